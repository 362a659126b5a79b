package dynarray

import "errors"

var (
	// ErrInvalidArgument is returned by the constructors when the configuration is invalid, e.g. a
	// negative capacity was requested.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned by positional operations when the index lies outside of
	// [0, Size()). The sequence is left unmodified.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidState is returned by [Iterator.Value] before the first call to [Iterator.Next] or
	// after the iterator is exhausted.
	ErrInvalidState = errors.New("invalid iterator state")
)
