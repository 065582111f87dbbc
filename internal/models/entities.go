package models

// Entities holds the structured values pulled out of an utterance. Each
// field is optional; a nil pointer means the value was not extracted,
// which is distinct from an extracted empty or false value.
type Entities struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	KRAPIN      *string `json:"kra_pin,omitempty"`
	NationalID  *string `json:"national_id,omitempty"`
	Email       *string `json:"email,omitempty"`
	UserName    *string `json:"user_name,omitempty"`
	Date        *string `json:"date,omitempty"`
	TimeSlot    *string `json:"time_slot,omitempty"`

	// Derived, intent-conditioned flags.
	ServiceType            *string `json:"service_type,omitempty"`
	RequiresPIN            *bool   `json:"requires_pin,omitempty"`
	RequiresIdentification *bool   `json:"requires_identification,omitempty"`
}

// String returns a pointer to s, for populating optional entity fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for populating optional entity fields.
func Bool(b bool) *bool { return &b }
