// Package entity pulls structured values out of raw utterance text via
// pattern matching. Extraction is a pure function of the text and the
// already-classified intent; it never consults external services.
package entity

import (
	"regexp"
	"strings"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

var (
	// Kenyan mobile numbers: 07/01-prefixed 10-digit local form or
	// +254-prefixed international form.
	phonePattern = regexp.MustCompile(`(?:\+254|0)?[17]\d{8}`)

	// KRA PINs are exactly 10 consecutive digits as a whole word. This is
	// checked before national IDs so a 10-digit literal never populates
	// both fields.
	kraPINPattern = regexp.MustCompile(`\b\d{10}\b`)

	// National IDs: 8 consecutive digits, or 4 groups of 2 digits
	// optionally separated by spaces. Word boundaries on both alternatives
	// keep an ID from matching inside a longer digit run such as a PIN.
	nationalIDPattern = regexp.MustCompile(`\b\d{8}\b|\b\d{2}\s*\d{2}\s*\d{2}\s*\d{2}\b`)

	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// Two consecutive title-case words. Capitalized mid-sentence words
	// produce false positives; accepted limitation of the heuristic.
	namePattern = regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\b`)

	datePattern = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

type Extractor struct {
	logger logger.Logger
}

func NewExtractor(log logger.Logger) *Extractor {
	return &Extractor{
		logger: log.WithFields(map[string]interface{}{"component": "entity-extractor"}),
	}
}

// Extract runs every field pattern against the raw (non-normalized) text.
// Fields are independent; a single utterance may populate several of them.
// Intent-conditioned derived flags are set afterwards.
func (e *Extractor) Extract(text string, intent models.Intent) models.Entities {
	entities := models.Entities{}

	if m := phonePattern.FindString(text); m != "" {
		entities.PhoneNumber = models.String(m)
	}

	if m := kraPINPattern.FindString(text); m != "" {
		entities.KRAPIN = models.String(m)
	}

	if m := nationalIDPattern.FindString(text); m != "" {
		entities.NationalID = models.String(whitespacePattern.ReplaceAllString(m, ""))
	}

	if m := emailPattern.FindString(text); m != "" {
		entities.Email = models.String(m)
	}

	if m := namePattern.FindString(text); m != "" {
		entities.UserName = models.String(m)
	}

	switch intent {
	case models.IntentKRANilReturns:
		entities.ServiceType = models.String("nil_returns")
		entities.RequiresPIN = models.Bool(entities.KRAPIN == nil)

	case models.IntentKRAPINRecovery:
		entities.ServiceType = models.String("pin_recovery")
		entities.RequiresIdentification = models.Bool(entities.NationalID == nil)

	case models.IntentKRAPINGeneration:
		entities.ServiceType = models.String("pin_generation")
		entities.RequiresIdentification = models.Bool(entities.NationalID == nil)

	case models.IntentBooking:
		if m := datePattern.FindString(text); m != "" {
			entities.Date = models.String(m)
		}

		lower := strings.ToLower(text)
		// "morning" is checked before "afternoon"; first match wins.
		if strings.Contains(lower, "morning") || strings.Contains(lower, "am") {
			entities.TimeSlot = models.String("morning")
		} else if strings.Contains(lower, "afternoon") || strings.Contains(lower, "pm") {
			entities.TimeSlot = models.String("afternoon")
		}
	}

	return entities
}
