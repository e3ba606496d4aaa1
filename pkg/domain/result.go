package domain

// EffectKind tags the side effect produced by one engine step.
type EffectKind string

const (
	// EffectNone means the step was purely conversational.
	EffectNone EffectKind = "none"

	// EffectPersistOrder means a confirmed order was priced and persisted.
	EffectPersistOrder EffectKind = "persist_order"

	// EffectCancelOrder means the step ended an order: either the Confirm
	// stage did not receive an affirmative answer (nothing was stored), or
	// the cancellation sub-flow ran its lookup (Deleted reports whether a
	// stored record was actually removed).
	EffectCancelOrder EffectKind = "cancel_order"
)

// SideEffect describes the non-conversational outcome of a step.
type SideEffect struct {
	Kind EffectKind

	// Order is set when Kind is EffectPersistOrder.
	Order *Order

	// CancelName and CancelPhone identify the cancellation target when Kind
	// is EffectCancelOrder and the cancellation sub-flow ran.
	CancelName  string
	CancelPhone string

	// Deleted reports whether a persisted record was removed.
	Deleted bool
}

// Result is what the engine hands back for every incoming message: the text
// to show the user plus the side effect (if any) the step produced.
type Result struct {
	Text   string
	Effect SideEffect
}
