package dynarray

import (
	"fmt"

	"github.com/teenjuna/dynarray/codec"
)

// Encode serializes the elements of the sequence in order with the provided codec.
func (s *Sequence[T]) Encode(c codec.Codec[T]) ([]byte, error) {
	data, err := c.Encode(s.Values())
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}
	return data, nil
}

// Decode deserializes elements with the provided codec and appends them to the sequence, as if by
// [Sequence.AddRange]. Elements decoded before an error are kept.
func (s *Sequence[T]) Decode(c codec.Codec[T], data []byte) error {
	if err := c.Decode(data, s.Add); err != nil {
		return fmt.Errorf("decode elements: %w", err)
	}
	return nil
}
