// Package intent classifies normalized utterances against a fixed,
// priority-ordered keyword rule table.
package intent

import (
	"strings"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

// fallbackConfidence is reported when no rule fires.
const fallbackConfidence = 0.5

type Classifier struct {
	rules  []rule
	logger logger.Logger
}

func NewClassifier(log logger.Logger) *Classifier {
	return &Classifier{
		rules:  rules,
		logger: log.WithFields(map[string]interface{}{"component": "intent-classifier"}),
	}
}

// Classify evaluates the rule table in order against normalized (lowercase,
// trimmed) text and returns the first match. Exactly one rule fires per
// call; when none does the result is IntentUnknown at low confidence,
// which is an ambiguity signal rather than an error.
func (c *Classifier) Classify(normalized string) (models.Intent, float64) {
	for _, r := range c.rules {
		if containsAny(normalized, r.keywords) {
			return r.intent, r.confidence
		}
	}
	return models.IntentUnknown, fallbackConfidence
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
