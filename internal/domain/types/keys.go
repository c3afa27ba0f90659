package types

import (
	"log/slog"

	"aesguard/internal/util/memzero"
)

const redacted = "[REDACTED]"

// KeySize is an AES key length in bytes.
type KeySize int

// Supported AES key lengths.
const (
	AES128 KeySize = 16
	AES192 KeySize = 24
	AES256 KeySize = 32
)

// SupportedKeySizes lists every key length the block cipher accepts.
var SupportedKeySizes = []KeySize{AES128, AES192, AES256}

// Bits returns the key length in bits.
func (k KeySize) Bits() int { return int(k) * 8 }

// Supported reports whether k is one of SupportedKeySizes.
func (k KeySize) Supported() bool {
	switch k {
	case AES128, AES192, AES256:
		return true
	}
	return false
}

// CipherKey is raw AES key material. It is treated as immutable once built
// and must be erased by its owner once a schedule has been derived from it.
type CipherKey []byte

// Size returns the key length.
func (k CipherKey) Size() KeySize { return KeySize(len(k)) }

// Valid reports whether the key has a supported length.
func (k CipherKey) Valid() bool { return k.Size().Supported() }

// Erase zeroes the key material in place.
func (k CipherKey) Erase() { memzero.Zero(k) }

// String never renders key bytes.
func (k CipherKey) String() string { return redacted }

// GoString never renders key bytes, including under %#v.
func (k CipherKey) GoString() string { return redacted }

// LogValue keeps key material out of structured logs.
func (k CipherKey) LogValue() slog.Value { return slog.StringValue(redacted) }
