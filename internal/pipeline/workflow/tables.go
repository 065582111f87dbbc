package workflow

import "github.com/Kelvin-Wepo/Rafiki.ai/internal/models"

// descriptorTemplates maps procedural intents to their workflow templates.
// Conversational intents (greeting, help, unknown, service inquiry) have
// no entry and resolve to nil. Resolve copies a template before returning
// it so callers can never mutate the table.
var descriptorTemplates = map[models.Intent]models.WorkflowDescriptor{
	models.IntentKRANilReturns: {
		Name: "KRA Nil Returns Filing",
		Steps: []string{
			"Confirm user has KRA PIN",
			"Explain nil returns eligibility",
			"Navigate to iTax portal",
			"Guide through login",
			"Guide through nil returns form",
			"Confirm submission",
			"Offer SMS confirmation",
		},
		URLs:                   []string{"https://accounts.ecitizen.go.ke/en/services/itax"},
		RequiresAuthentication: true,
		SMSConfirmation:        true,
	},
	models.IntentKRAPINRecovery: {
		Name: "KRA PIN Recovery",
		Steps: []string{
			"Verify user identity (national ID)",
			"Explain recovery process",
			"Ask for registered email/phone",
			"Guide through recovery link",
			"Confirm new PIN delivery",
			"Offer SMS confirmation",
		},
		URLs:                   []string{"https://accounts.ecitizen.go.ke/en/services/pin-recovery"},
		RequiresAuthentication: false,
		SMSConfirmation:        true,
	},
	models.IntentKRAPINGeneration: {
		Name: "KRA PIN Generation",
		Steps: []string{
			"Verify user identity (national ID)",
			"Explain PIN requirements",
			"Navigate to iTax registration",
			"Guide through registration form",
			"Confirm PIN assignment",
			"Offer SMS PIN confirmation",
		},
		URLs:                   []string{"https://accounts.ecitizen.go.ke/en/services/pin-registration"},
		RequiresAuthentication: false,
		SMSConfirmation:        true,
	},
	models.IntentITaxHelp: {
		Name: "iTax Portal Assistance",
		Steps: []string{
			"Determine specific issue",
			"Provide login guidance",
			"Offer step-by-step help",
			"Confirm issue resolved",
		},
		URLs:                   []string{"https://itax.kra.go.ke"},
		RequiresAuthentication: true,
		SMSConfirmation:        false,
	},
	models.IntentBooking: {
		Name: "Appointment Booking",
		Steps: []string{
			"Confirm service type",
			"Verify user identity",
			"Confirm preferred date/time",
			"Take contact details",
			"Send SMS confirmation",
		},
		URLs:                   []string{},
		RequiresAuthentication: false,
		SMSConfirmation:        true,
	},
}
