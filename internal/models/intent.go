package models

// Intent is the classified goal of an utterance.
type Intent string

const (
	IntentKRANilReturns    Intent = "kra_nil_returns"
	IntentKRAPINRecovery   Intent = "kra_pin_recovery"
	IntentKRAPINGeneration Intent = "kra_pin_generation"
	IntentITaxHelp         Intent = "itax_help"
	IntentServiceInquiry   Intent = "service_inquiry"
	IntentBooking          Intent = "book_appointment"
	IntentConfirmation     Intent = "confirm"
	IntentNegation         Intent = "negate"
	IntentNavigation       Intent = "navigate"
	IntentClarification    Intent = "clarify"
	IntentGreeting         Intent = "greeting"
	IntentHelp             Intent = "help"
	IntentUnknown          Intent = "unknown"
)

// WorkflowDescriptor describes the multi-step fulfillment of a procedural
// intent. Descriptors are built fresh per request from a static template
// table and never mutated in place.
type WorkflowDescriptor struct {
	Name                   string   `json:"name"`
	Steps                  []string `json:"steps"`
	URLs                   []string `json:"urls"`
	RequiresAuthentication bool     `json:"requires_authentication"`
	SMSConfirmation        bool     `json:"sms_confirmation"`
}

// Turn is one prior conversation exchange supplied by the caller.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Result aggregates the outputs of the full understanding pipeline for a
// single utterance.
type Result struct {
	Intent               Intent              `json:"intent"`
	Confidence           float64             `json:"confidence"`
	Language             Language            `json:"language"`
	NormalizedText       string              `json:"normalized_message"`
	Entities             Entities            `json:"entities"`
	Workflow             *WorkflowDescriptor `json:"workflow"`
	SuggestedActions     []string            `json:"suggested_actions"`
	RequiresConfirmation bool                `json:"requires_confirmation"`
	IsConversational     bool                `json:"is_conversational"`
}
