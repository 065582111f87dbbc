package intent

import "github.com/Kelvin-Wepo/Rafiki.ai/internal/models"

// rule is one entry of the ordered classification table. A rule fires when
// the normalized text contains any of its keywords as a substring; "itax"
// matching inside a longer token is a known, accepted imprecision.
type rule struct {
	intent     models.Intent
	confidence float64
	keywords   []string
}

// rules is evaluated top to bottom; the first match wins, so earlier
// entries take precedence over later, more generic ones. Confidence
// constants are hand-tuned and kept as-is for behavioral compatibility.
var rules = []rule{
	{
		intent:     models.IntentKRANilReturns,
		confidence: 0.95,
		keywords: []string{
			"nil returns", "nil return", "zero returns", "no income",
			"file returns", "file nil", "submit returns", "annual returns",
			"kra returns", "income returns", "tax returns",
		},
	},
	{
		intent:     models.IntentKRAPINRecovery,
		confidence: 0.95,
		keywords: []string{
			"recover pin", "reset pin", "forgotten pin", "lost pin",
			"pin recovery", "forgot pin", "pin reset", "new pin",
			"pin help", "pin issue", "pin problem",
		},
	},
	{
		intent:     models.IntentKRAPINGeneration,
		confidence: 0.90,
		keywords: []string{
			"get pin", "generate pin", "create pin", "new pin",
			"pin application", "apply for pin", "register for pin",
			"kra pin", "pin number",
		},
	},
	{
		intent:     models.IntentITaxHelp,
		confidence: 0.85,
		keywords: []string{
			"itax", "i-tax", "login", "password", "username",
			"dashboard", "portal", "account", "access itax",
		},
	},
	{
		intent:     models.IntentGreeting,
		confidence: 0.90,
		keywords: []string{
			"hello", "hi", "hey", "good morning", "good afternoon",
			"good evening", "habari", "jambo", "asante", "karibu",
			"how are you", "how are you doing",
		},
	},
	{
		intent:     models.IntentHelp,
		confidence: 0.85,
		// Bare interrogatives ("how", "what") are deliberately absent:
		// as substrings they would capture nearly every off-topic
		// question that should fall through to unknown.
		keywords: []string{
			"help", "assist", "support", "guide", "explain", "clarify",
			"confused", "stuck", "unclear", "msaada",
		},
	},
	{
		intent:     models.IntentConfirmation,
		confidence: 0.80,
		keywords: []string{
			"yes", "yeah", "yep", "okay", "ok", "sure", "confirmed",
			"proceed", "go ahead", "continue", "ndiyo", "sawa", "kweli",
		},
	},
	{
		intent:     models.IntentNegation,
		confidence: 0.80,
		keywords: []string{
			"no", "nope", "cancel", "stop", "don't", "dont", "back",
			"previous", "hapana", "simu", "usisoma",
		},
	},
	{
		intent:     models.IntentServiceInquiry,
		confidence: 0.85,
		keywords: []string{
			"passport", "id", "license", "permit", "conduct", "birth",
		},
	},
	{
		intent:     models.IntentBooking,
		confidence: 0.80,
		keywords: []string{
			"book", "appointment", "schedule", "reserve",
		},
	},
}
