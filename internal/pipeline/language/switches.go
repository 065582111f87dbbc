package language

import (
	"regexp"
	"strings"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

var sentenceSplitPattern = regexp.MustCompile(`[.!?]`)

// DetectSwitches splits text into sentences, detects the language of each
// one, and merges consecutive same-language sentences into a single
// segment. Adjacent segments never share a language tag. Offsets are
// best-effort: sentence splitting discards the delimiter characters, so
// Start/End locate the segment approximately in the original text.
func (d *Detector) DetectSwitches(text string) []models.CodeSwitchSegment {
	var segments []models.CodeSwitchSegment

	var current []string
	currentLang := models.Language("")
	currentStart := 0
	searchFrom := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		segText := strings.Join(current, ". ")
		segments = append(segments, models.CodeSwitchSegment{
			Text:     segText,
			Language: currentLang,
			Start:    currentStart,
			End:      currentStart + len(segText),
		})
		current = nil
	}

	for _, raw := range sentenceSplitPattern.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}

		detected := d.Detect(sentence, nil)

		if detected.Language != currentLang {
			flush()
			currentLang = detected.Language
			if idx := strings.Index(text[searchFrom:], sentence); idx >= 0 {
				currentStart = searchFrom + idx
			} else {
				currentStart = searchFrom
			}
		}

		if idx := strings.Index(text[searchFrom:], sentence); idx >= 0 {
			searchFrom += idx + len(sentence)
		}

		current = append(current, sentence)
	}

	flush()

	return segments
}
