package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	return NewAnalyzer(logger.NewTestLogger(t))
}

func TestAnalyzer_Analyze_NilReturnsEndToEnd(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("Hello! I want to file nil returns, my KRA pin is 1234567890", nil, nil)

	assert.Equal(t, models.LanguageEnglish, result.Language)
	assert.Equal(t, models.IntentKRANilReturns, result.Intent)
	assert.Equal(t, 0.95, result.Confidence)

	require.NotNil(t, result.Entities.KRAPIN)
	assert.Equal(t, "1234567890", *result.Entities.KRAPIN)
	assert.Nil(t, result.Entities.NationalID)

	require.NotNil(t, result.Entities.ServiceType)
	assert.Equal(t, "nil_returns", *result.Entities.ServiceType)

	require.NotNil(t, result.Entities.RequiresPIN)
	assert.False(t, *result.Entities.RequiresPIN)

	require.NotNil(t, result.Workflow)
	assert.Equal(t, "KRA Nil Returns Filing", result.Workflow.Name)
	assert.Len(t, result.Workflow.Steps, 7)

	assert.True(t, result.RequiresConfirmation)
	assert.False(t, result.IsConversational)
	assert.Len(t, result.SuggestedActions, 3)
}

func TestAnalyzer_Analyze_KiswahiliUtterance(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("Nataka kusaidia, nambari yangu ya simu ni 0712345678", nil, nil)

	assert.Equal(t, models.LanguageKiswahili, result.Language)

	require.NotNil(t, result.Entities.PhoneNumber)
	assert.Equal(t, "0712345678", *result.Entities.PhoneNumber)
}

func TestAnalyzer_Analyze_OffTopicFallsThrough(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("What's the weather today?", nil, nil)

	assert.Equal(t, models.IntentUnknown, result.Intent)
	assert.Equal(t, 0.5, result.Confidence)
	assert.Nil(t, result.Workflow)
	assert.True(t, result.IsConversational)
	assert.False(t, result.RequiresConfirmation)
	assert.Equal(t, []string{
		"Can you clarify that?",
		"Tell me more",
		"Try again",
	}, result.SuggestedActions)
}

func TestAnalyzer_Analyze_EmptyUtterance(t *testing.T) {
	a := newTestAnalyzer(t)

	result := a.Analyze("", nil, nil)

	assert.Equal(t, models.LanguageEnglish, result.Language)
	assert.Equal(t, models.IntentUnknown, result.Intent)
	assert.Equal(t, 0.5, result.Confidence)
	assert.Nil(t, result.Workflow)
}

func TestAnalyzer_Analyze_SessionLanguagePin(t *testing.T) {
	a := newTestAnalyzer(t)

	session := &models.SessionContext{PreferredLanguage: models.LanguageKiswahili}
	result := a.Analyze("Hello, I want to file nil returns", nil, session)

	// Detection is skipped entirely; the intent pipeline still runs.
	assert.Equal(t, models.LanguageKiswahili, result.Language)
	assert.Equal(t, models.IntentKRANilReturns, result.Intent)

	// The caller's session value is never written through.
	assert.Equal(t, models.Intent(""), session.LastIntent)
}

func TestAnalyzer_Analyze_ConversationalIntents(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		text       string
		wantIntent models.Intent
	}{
		{"jambo rafiki", models.IntentGreeting},
		{"i am stuck, msaada", models.IntentHelp},
	}

	for _, tt := range tests {
		result := a.Analyze(tt.text, nil, nil)
		assert.Equal(t, tt.wantIntent, result.Intent)
		assert.Nil(t, result.Workflow)
		assert.True(t, result.IsConversational)
		assert.False(t, result.RequiresConfirmation)
	}
}

func TestAnalyzer_Analyze_HistoryAccepted(t *testing.T) {
	a := newTestAnalyzer(t)

	history := []models.Turn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "Karibu! How can I help?"},
	}

	result := a.Analyze("i forgot pin", history, nil)
	assert.Equal(t, models.IntentKRAPINRecovery, result.Intent)
}

func TestAnalyzer_Analyze_ConcurrentCalls(t *testing.T) {
	a := newTestAnalyzer(t)

	utterances := []string{
		"Hello! I want to file nil returns",
		"Nataka kusaidia tafadhali",
		"book an appointment for 12/05/2025 in the morning",
		"what's the weather today?",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, u := range utterances {
			wg.Add(1)
			go func(text string) {
				defer wg.Done()
				result := a.Analyze(text, nil, &models.SessionContext{})
				assert.True(t, result.Language.IsValid())
				assert.NotEmpty(t, result.SuggestedActions)
			}(u)
		}
	}
	wg.Wait()
}

func TestAnalyzer_Analyze_AlwaysWellFormed(t *testing.T) {
	a := newTestAnalyzer(t)

	inputs := []string{
		"",
		"    ",
		"!@#$%^&*()_+",
		"\x00\x01\x02",
		"averyverylongwordwithoutanyspacesatallrepeatedaveryverylongword",
	}

	for _, text := range inputs {
		result := a.Analyze(text, nil, nil)
		assert.True(t, result.Language.IsValid(), "input %q", text)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "input %q", text)
		assert.NotEmpty(t, result.SuggestedActions, "input %q", text)
	}
}
