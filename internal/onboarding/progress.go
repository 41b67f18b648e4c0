package onboarding

// Progress reports how far along the indicator is when the wizard is on step
// and the indicator has total steps: the number of steps already completed,
// and the fill fraction of the bar, (step-1)/(total-1), clamped to [0, 1].
func Progress(step Step, total int) (completed int, fraction float64) {
	if total <= 0 {
		return 0, 0
	}
	completed = min(max(int(step)-1, 0), total)
	if total == 1 {
		if completed > 0 {
			return completed, 1
		}
		return 0, 0
	}
	fraction = float64(min(completed, total-1)) / float64(total-1)
	return completed, fraction
}
