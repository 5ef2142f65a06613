package booking

// Reasons reported by operations that leave the session unchanged.
const (
	ReasonAtLastStep       = "already at the last step"
	ReasonAtFirstStep      = "already at the first step"
	ReasonStepOutOfRange   = "step is outside 1-4"
	ReasonNegativeQuantity = "quantity cannot be negative"
	ReasonNotSelected      = "menu item is not selected"
	ReasonEmptyPatch       = "no event info fields given"
)

// Outcome reports whether an operation changed the session. Rejected
// operations are not errors: the session is left as it was and Reason says why.
type Outcome struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func rejected(reason string) Outcome {
	return Outcome{Reason: reason}
}
