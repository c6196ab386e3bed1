package trace

// Sequence is a lazy, finite producer of Steps, compatible with Go's
// range-over-func iteration (iter.Seq[Step[D]]). A Sequence is fresh per
// constructor call and not restartable once partially drained.
type Sequence[D any] func(yield func(Step[D]) bool)

// Collect drains seq fully into an ordered slice. If obs is non-nil, each
// Step is forwarded synchronously as OnEvent(KindStep, step) the instant it
// is produced, so a live renderer can animate while the run progresses.
// Complexity: O(steps), plus whatever the observer does per step.
func Collect[D any](seq Sequence[D], obs Observer) []Step[D] {
	steps := make([]Step[D], 0, 16)
	for step := range seq {
		steps = append(steps, step)
		if obs != nil {
			obs.OnEvent(KindStep, step)
		}
	}

	return steps
}

// Counter hands out monotonically increasing step numbers starting at 1.
// Each algorithm run owns its own Counter.
type Counter int

// Next advances the counter and returns the new step number.
func (c *Counter) Next() int {
	*c++

	return int(*c)
}
