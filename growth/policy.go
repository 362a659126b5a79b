// This package contains the main [Policy] interface and several implementations.
package growth

// Policy defines how a sequence computes its next capacity when it runs out of spare slots.
//
// Implementations are stateless and may be shared between sequences.
type Policy interface {
	// Next returns the capacity to grow to from the current capacity.
	//
	// The returned value must be greater than capacity. A sequence that receives a smaller value
	// grows by a single slot instead.
	Next(capacity int) int
}
