// Package pipeline orchestrates the language and intent understanding
// pipeline: language detection, intent classification, entity extraction,
// workflow resolution, and suggestion generation over a single utterance.
//
// The pipeline is pure computation with no I/O. It is safe for concurrent
// use provided each call receives its own session context value; it holds
// no shared mutable state and never retains a caller reference beyond the
// call.
package pipeline

import (
	"strings"

	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/metrics"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline/entity"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline/intent"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline/language"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline/suggest"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline/workflow"
)

// confirmationIntents require an explicit user confirmation before the
// assistant acts on the workflow.
var confirmationIntents = map[models.Intent]bool{
	models.IntentBooking:          true,
	models.IntentKRANilReturns:    true,
	models.IntentKRAPINRecovery:   true,
	models.IntentKRAPINGeneration: true,
}

// conversationalIntents are answered with dialogue rather than a workflow.
var conversationalIntents = map[models.Intent]bool{
	models.IntentGreeting:       true,
	models.IntentHelp:           true,
	models.IntentUnknown:        true,
	models.IntentServiceInquiry: true,
	models.IntentClarification:  true,
}

type Analyzer struct {
	detector   *language.Detector
	classifier *intent.Classifier
	extractor  *entity.Extractor
	resolver   *workflow.Resolver
	logger     logger.Logger
}

func NewAnalyzer(log logger.Logger) *Analyzer {
	return &Analyzer{
		detector:   language.NewDetector(log),
		classifier: intent.NewClassifier(log),
		extractor:  entity.NewExtractor(log),
		resolver:   workflow.NewResolver(log),
		logger:     log.WithFields(map[string]interface{}{"component": "analyzer"}),
	}
}

// Detector exposes the language detector for callers that only need
// detection or session language pinning.
func (a *Analyzer) Detector() *language.Detector {
	return a.detector
}

// Analyze runs the full pipeline over one utterance. History is accepted
// for interface parity with the conversation layer; the current rule set
// does not branch on it. Every input, however malformed, yields a
// well-formed result: any internal panic short-circuits to a fixed
// unknown-intent result instead of propagating.
func (a *Analyzer) Analyze(utterance string, history []models.Turn, session *models.SessionContext) (result models.Result) {
	detected := models.DetectionResult{Language: models.LanguageEnglish, Confidence: 0.5}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis failed", map[string]interface{}{
				"panic": r,
			})
			metrics.AnalysisFailures.WithLabelValues("analyze").Inc()
			result = errorResult(detected.Language)
		}
	}()

	detected = a.detector.Detect(utterance, session)

	normalized := strings.ToLower(strings.TrimSpace(utterance))

	classified, confidence := a.classifier.Classify(normalized)

	entities := a.extractor.Extract(utterance, classified)

	wf := a.resolver.Resolve(classified, entities, session)

	suggestions := suggest.Suggest(classified, wf)

	a.logger.Debug("utterance analyzed", map[string]interface{}{
		"intent":     string(classified),
		"confidence": confidence,
		"language":   string(detected.Language),
	})

	return models.Result{
		Intent:               classified,
		Confidence:           confidence,
		Language:             detected.Language,
		NormalizedText:       normalized,
		Entities:             entities,
		Workflow:             wf,
		SuggestedActions:     suggestions,
		RequiresConfirmation: confirmationIntents[classified],
		IsConversational:     conversationalIntents[classified],
	}
}

// errorResult is the fixed terminal result for internal failures.
func errorResult(lang models.Language) models.Result {
	return models.Result{
		Intent:           models.IntentUnknown,
		Confidence:       0,
		Language:         lang,
		Entities:         models.Entities{},
		Workflow:         nil,
		SuggestedActions: []string{"Could you clarify what you need?"},
		IsConversational: true,
	}
}
