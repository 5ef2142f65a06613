package booking

// StepLabel is the heading shown for a wizard step.
func StepLabel(step int) string {
	switch step {
	case StepEventInfo:
		return "Book an Event"
	case StepMenu:
		return "Menu Customization"
	case StepBeverage:
		return "Beverage Packages"
	case StepOverview:
		return "Checkout"
	}
	return ""
}

type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

type StepProgress struct {
	Step  int       `json:"step"`
	Label string    `json:"label"`
	State StepState `json:"state"`
}

// Progress describes every step relative to the current one.
func (s *Session) Progress() []StepProgress {
	out := make([]StepProgress, 0, LastStep)
	for step := FirstStep; step <= LastStep; step++ {
		state := StepPending
		switch {
		case step < s.step:
			state = StepCompleted
		case step == s.step:
			state = StepCurrent
		}
		out = append(out, StepProgress{Step: step, Label: StepLabel(step), State: state})
	}
	return out
}
