package domain

type Step int

const (
	StepHome Step = iota
	StepProductSelection
	StepDesignSelection
	StepDesignSuit
	StepSummary
	StepCheckout
)

func (s Step) String() string {
	switch s {
	case StepHome:
		return "home"
	case StepProductSelection:
		return "product-selection"
	case StepDesignSelection:
		return "design-selection"
	case StepDesignSuit:
		return "design-suit"
	case StepSummary:
		return "summary"
	case StepCheckout:
		return "checkout"
	default:
		return "unknown"
	}
}
