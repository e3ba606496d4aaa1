package domain

// Order is the flat record persisted when a conversation reaches a confirmed
// placement. It is immutable after creation; cancellation deletes records by
// exact (Name, Phone) equality.
type Order struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Flavor   string `json:"flavor"`
	Topping  string `json:"topping"`
	Size     string `json:"size"`

	// Customization is nil when the user declined a custom message.
	Customization *string `json:"customization,omitempty"`

	Cost int `json:"cost"`
}
