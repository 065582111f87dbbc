// Package suggest produces short ranked lists of next-action prompts per
// intent. Order is significant; callers render the lists as ranked
// quick-reply buttons.
package suggest

import "github.com/Kelvin-Wepo/Rafiki.ai/internal/models"

var intentSuggestions = map[models.Intent][]string{
	models.IntentKRANilReturns: {
		"Guide me through filing nil returns",
		"Open iTax portal",
		"Do I qualify for nil returns?",
	},
	models.IntentKRAPINRecovery: {
		"Help me recover my PIN",
		"Send recovery link to my email",
		"Explain the recovery process",
	},
	models.IntentKRAPINGeneration: {
		"Apply for a new KRA PIN",
		"What do I need to get a PIN?",
		"Start the registration process",
	},
	models.IntentITaxHelp: {
		"Help me log in to iTax",
		"I forgot my iTax password",
		"Open the iTax portal",
	},
	models.IntentBooking: {
		"Book a Huduma Centre appointment",
		"Pick a date and time",
		"What should I bring?",
	},
	models.IntentGreeting: {
		"File nil returns",
		"Recover my KRA PIN",
		"Book an appointment",
	},
	models.IntentHelp: {
		"Can you help me navigate?",
		"What services are available?",
		"Go back to main menu",
	},
}

var fallbackSuggestions = []string{
	"Can you clarify that?",
	"Tell me more",
	"Try again",
}

// Suggest returns the ranked next-action prompts for an intent. The
// workflow argument is accepted for forward extensibility; suggestions
// currently key on intent alone. The returned slice is a fresh copy.
func Suggest(intent models.Intent, workflow *models.WorkflowDescriptor) []string {
	list, ok := intentSuggestions[intent]
	if !ok {
		list = fallbackSuggestions
	}

	out := make([]string, len(list))
	copy(out, list)
	return out
}
