package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

func newTestClassifier(t *testing.T) *Classifier {
	return NewClassifier(logger.NewTestLogger(t))
}

func TestClassifier_Classify(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name           string
		text           string
		wantIntent     models.Intent
		wantConfidence float64
	}{
		{
			name:           "nil returns",
			text:           "i want to file nil returns this year",
			wantIntent:     models.IntentKRANilReturns,
			wantConfidence: 0.95,
		},
		{
			name:           "pin recovery",
			text:           "i forgot pin for itax",
			wantIntent:     models.IntentKRAPINRecovery,
			wantConfidence: 0.95,
		},
		{
			name:           "pin generation",
			text:           "how do i apply for pin registration",
			wantIntent:     models.IntentKRAPINGeneration,
			wantConfidence: 0.90,
		},
		{
			name:           "itax help",
			text:           "my itax password is not working",
			wantIntent:     models.IntentITaxHelp,
			wantConfidence: 0.85,
		},
		{
			name:           "greeting",
			text:           "jambo rafiki",
			wantIntent:     models.IntentGreeting,
			wantConfidence: 0.90,
		},
		{
			name:           "help",
			text:           "i am stuck and need msaada",
			wantIntent:     models.IntentHelp,
			wantConfidence: 0.85,
		},
		{
			name:           "confirmation",
			text:           "ndiyo proceed",
			wantIntent:     models.IntentConfirmation,
			wantConfidence: 0.80,
		},
		{
			name:           "negation",
			text:           "hapana cancel that",
			wantIntent:     models.IntentNegation,
			wantConfidence: 0.80,
		},
		{
			name:           "service inquiry",
			text:           "i want a certificate of good conduct",
			wantIntent:     models.IntentServiceInquiry,
			wantConfidence: 0.85,
		},
		{
			name:           "booking",
			text:           "i need an appointment next week",
			wantIntent:     models.IntentBooking,
			wantConfidence: 0.80,
		},
		{
			name:           "unknown fallback",
			text:           "the weather seems fine in mombasa",
			wantIntent:     models.IntentUnknown,
			wantConfidence: 0.5,
		},
		{
			name:           "empty text",
			text:           "",
			wantIntent:     models.IntentUnknown,
			wantConfidence: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, confidence := c.Classify(tt.text)
			assert.Equal(t, tt.wantIntent, intent)
			assert.Equal(t, tt.wantConfidence, confidence)
		})
	}
}

func TestClassifier_Classify_RulePrecedence(t *testing.T) {
	c := newTestClassifier(t)

	// Contains both a greeting keyword and a nil-returns keyword; the
	// earlier rule wins.
	intent, confidence := c.Classify("hi, i need to file nil returns")
	assert.Equal(t, models.IntentKRANilReturns, intent)
	assert.Equal(t, 0.95, confidence)

	// Recovery precedes generation for the shared "new pin" keyword.
	intent, _ = c.Classify("i need a new pin")
	assert.Equal(t, models.IntentKRAPINRecovery, intent)
}

func TestClassifier_Classify_SubstringSemantics(t *testing.T) {
	c := newTestClassifier(t)

	// Keywords match as raw substrings, not tokens; this imprecision is
	// part of the contract.
	intent, _ := c.Classify("mynameitax123")
	assert.Equal(t, models.IntentITaxHelp, intent)
}

func TestClassifier_Classify_OffTopicQuestion(t *testing.T) {
	c := newTestClassifier(t)

	intent, confidence := c.Classify("what's the weather today?")
	assert.Equal(t, models.IntentUnknown, intent)
	assert.Equal(t, 0.5, confidence)
}
