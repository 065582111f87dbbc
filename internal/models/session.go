package models

// SessionContext is the caller-owned conversation state passed into the
// pipeline. The pipeline only reads it; language pinning returns an
// updated copy rather than writing through the caller's reference.
type SessionContext struct {
	PreferredLanguage Language `json:"preferred_language,omitempty"`
	BookingState      string   `json:"booking_state,omitempty"`
	LastIntent        Intent   `json:"last_intent,omitempty"`
	UserProgress      string   `json:"user_progress,omitempty"`
}
