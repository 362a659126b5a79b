// This package contains the main [Codec] interface and several implementations inside subpackages.
package codec

import "iter"

// Codec encodes and decodes the elements of a sequence.
//
// Implementations are not considered thread-safe.
type Codec[Item any] interface {
	// Encode serializes a sequence of items into a byte slice.
	Encode(items iter.Seq[Item]) ([]byte, error)
	// Decode deserializes a byte slice into items, pushing each to the provided function in the
	// order they were encoded.
	Decode(data []byte, push func(Item)) error
	// Derive returns a new Codec instance with the same settings.
	//
	// The returned codec maintains its own internal state independent of the original.
	Derive() Codec[Item]
}
