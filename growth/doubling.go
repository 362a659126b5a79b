package growth

// DoublingPolicy is the [Policy] returned by [Doubling].
type DoublingPolicy struct{}

var _ Policy = DoublingPolicy{}

// Doubling returns the default policy: an empty buffer grows to a single slot, any other buffer
// doubles in size. Total copy work across n appends stays O(n).
func Doubling() DoublingPolicy {
	return DoublingPolicy{}
}

func (DoublingPolicy) Next(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}
