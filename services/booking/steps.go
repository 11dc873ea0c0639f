package booking

// Workflow steps in forward order. Staff is skipped (auto-populated with
// "any") when the salon hides staff selection. Success is terminal.
const (
	StepService = "service"
	StepDate    = "date"
	StepTime    = "time"
	StepStaff   = "staff"
	StepInfo    = "info"
	StepConfirm = "confirm"
	StepSuccess = "success"
)

var stepOrder = []string{StepService, StepDate, StepTime, StepStaff, StepInfo, StepConfirm, StepSuccess}

func stepIndex(step string) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// ValidStep reports whether step names a known workflow step. Restored
// progress records with unknown steps are discarded.
func ValidStep(step string) bool {
	return stepIndex(step) >= 0
}

// previousStep returns the step before the given one, or "" from the first.
func previousStep(step string) string {
	i := stepIndex(step)
	if i <= 0 {
		return ""
	}
	return stepOrder[i-1]
}
