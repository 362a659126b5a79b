package growth

// Linear grows the buffer by a fixed number of slots. Appends become O(n) amortized, so it is
// only reasonable for sequences with a known small upper bound.
type Linear struct {
	step int
}

var _ Policy = (*Linear)(nil)

func NewLinear(step int) *Linear {
	if step < 1 {
		panic("step can't be < 1")
	}

	return &Linear{step: step}
}

func (p *Linear) Next(capacity int) int {
	return capacity + p.step
}
