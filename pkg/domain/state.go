package domain

import "time"

// ConversationState is the mutable per-session record the engine advances on
// every incoming message. Fields are populated in stage order; a later-stage
// field is never set while an earlier required field is still empty.
//
// Customization is a pointer so "no customization" (nil) is distinguishable
// from an empty string.
type ConversationState struct {
	Stage        Stage     `json:"stage"`
	LastActiveAt time.Time `json:"last_active_at"`

	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Category string `json:"category,omitempty"`
	Flavor   string `json:"flavor,omitempty"`
	Topping  string `json:"topping,omitempty"`
	Size     string `json:"size,omitempty"`

	Customization *string `json:"customization,omitempty"`

	// Separate slots for the cancellation sub-flow so it never clobbers an
	// in-progress order.
	CancelName  string `json:"cancel_name,omitempty"`
	CancelPhone string `json:"cancel_phone,omitempty"`
}

// NewState creates a clean state at the Welcome stage.
func NewState(now time.Time) *ConversationState {
	return &ConversationState{
		Stage:        StageWelcome,
		LastActiveAt: now,
	}
}

// Reset clears every collected field and returns the session to Welcome.
func (s *ConversationState) Reset(now time.Time) {
	*s = ConversationState{
		Stage:        StageWelcome,
		LastActiveAt: now,
	}
}

// Clone returns a deep copy so stores can hand out states without aliasing.
func (s *ConversationState) Clone() *ConversationState {
	cp := *s
	if s.Customization != nil {
		v := *s.Customization
		cp.Customization = &v
	}
	return &cp
}
