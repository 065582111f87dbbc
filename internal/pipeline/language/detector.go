// Package language scores utterances against English and Kiswahili
// lexical evidence and segments mixed-language text into per-sentence
// language runs.
package language

import (
	"strings"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

// kiswahiliMargin is the score lead Kiswahili needs over English before it
// wins. The asymmetry biases short or ambiguous text toward English as the
// safer default for a mixed-fluency audience. Hand-tuned calibration
// constant, kept for behavioral compatibility.
const kiswahiliMargin = 0.2

// zeroScoreConfidence is returned when neither language accumulates any
// evidence at all.
const zeroScoreConfidence = 0.6

type Detector struct {
	logger logger.Logger
}

func NewDetector(log logger.Logger) *Detector {
	return &Detector{
		logger: log.WithFields(map[string]interface{}{"component": "language-detector"}),
	}
}

// Detect returns the dominant language of text with a confidence in [0,1].
// When the session carries a pinned language, detection is skipped and the
// pinned value is returned at full confidence.
func (d *Detector) Detect(text string, session *models.SessionContext) models.DetectionResult {
	if session != nil && session.PreferredLanguage.IsValid() {
		return models.DetectionResult{
			Language:   session.PreferredLanguage,
			Confidence: 1.0,
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return models.DetectionResult{
			Language:   models.LanguageEnglish,
			Confidence: 0.5,
		}
	}

	swScore := scoreKiswahili(normalized)
	enScore := scoreEnglish(normalized)

	total := swScore + enScore

	if swScore > enScore+kiswahiliMargin {
		confidence := zeroScoreConfidence
		if total > 0 {
			confidence = swScore / total
		}
		return models.DetectionResult{
			Language:   models.LanguageKiswahili,
			Confidence: clamp01(confidence),
		}
	}

	confidence := zeroScoreConfidence
	if total > 0 {
		confidence = enScore / total
	}
	return models.DetectionResult{
		Language:   models.LanguageEnglish,
		Confidence: clamp01(confidence),
	}
}

// PinLanguage returns a copy of session with the preferred language set.
// The caller's session value is left untouched.
func (d *Detector) PinLanguage(session *models.SessionContext, lang models.Language) (models.SessionContext, bool) {
	if !lang.IsValid() {
		return models.SessionContext{}, false
	}

	updated := models.SessionContext{}
	if session != nil {
		updated = *session
	}
	updated.PreferredLanguage = lang

	d.logger.Info("session language pinned", map[string]interface{}{
		"language": string(lang),
	})

	return updated, true
}

func scoreKiswahili(text string) float64 {
	score := 0.0
	words := strings.Fields(text)

	if len(words) > 0 {
		hits := 0
		for _, w := range words {
			if kiswahiliVocabulary[normalizeWord(w)] {
				hits++
			}
		}
		score += float64(hits) / float64(len(words)) * 0.5
	}

	patternMatches := 0
	for _, p := range kiswahiliPatterns {
		if p.MatchString(text) {
			patternMatches++
		}
	}
	score += float64(patternMatches) / float64(len(kiswahiliPatterns)) * 0.3

	phraseHits := 0
	for _, phrase := range kiswahiliPhrases {
		if strings.Contains(text, phrase) {
			phraseHits++
		}
	}
	score += minFloat(float64(phraseHits)*0.1, 0.2)

	return clamp01(score)
}

func scoreEnglish(text string) float64 {
	score := 0.0
	words := strings.Fields(text)

	if len(words) > 0 {
		hits := 0
		for _, w := range words {
			if englishVocabulary[normalizeWord(w)] {
				hits++
			}
		}
		score += float64(hits) / float64(len(words)) * 0.4
	}

	if englishContractionPattern.MatchString(text) {
		score += 0.2
	}

	if englishFunctionWordPattern.MatchString(text) {
		score += 0.3
	}

	phraseHits := 0
	for _, phrase := range englishPhrases {
		if strings.Contains(text, phrase) {
			phraseHits++
		}
	}
	score += minFloat(float64(phraseHits)*0.1, 0.2)

	return clamp01(score)
}

func normalizeWord(word string) string {
	return nonWordPattern.ReplaceAllString(strings.ToLower(word), "")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
