package growth

import "math"

type Exponential struct {
	base    float64
	minimum int
}

var _ Policy = (*Exponential)(nil)

func NewExponential(base float64) *Exponential {
	if base <= 1 {
		panic("base can't be <= 1")
	}

	return &Exponential{
		base:    base,
		minimum: 1,
	}
}

// WithMinimum sets the capacity an empty buffer grows to.
func (p *Exponential) WithMinimum(minimum int) *Exponential {
	if minimum < 1 {
		panic("minimum can't be < 1")
	}
	p.minimum = minimum
	return p
}

func (p *Exponential) Next(capacity int) int {
	if capacity == 0 {
		return p.minimum
	}

	next := math.Ceil(float64(capacity) * p.base)
	if next >= math.MaxInt {
		return math.MaxInt
	}

	return max(int(next), capacity+1)
}
