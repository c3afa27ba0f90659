package types

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyLength is returned when key material is not 16, 24 or 32
// bytes long.
var ErrInvalidKeyLength = errors.New("invalid key length")

// KeyLengthError reports the rejected length. It carries no key material.
type KeyLengthError struct {
	Got int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("%v: got %d bytes, want 16, 24 or 32", ErrInvalidKeyLength, e.Got)
}

// Unwrap lets errors.Is match ErrInvalidKeyLength.
func (e *KeyLengthError) Unwrap() error { return ErrInvalidKeyLength }
