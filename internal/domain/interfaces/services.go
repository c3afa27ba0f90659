package interfaces

import (
	domaintypes "aesguard/internal/domain/types"
)

// PrimitiveService is the boundary higher-level code calls into. Every call
// derives its own key schedule and erases it before returning.
type PrimitiveService interface {
	// EncryptBlock applies the forward cipher to a single block.
	EncryptBlock(key domaintypes.CipherKey, in domaintypes.Block) (domaintypes.Block, error)
	// DecryptBlock applies the inverse cipher to a single block.
	DecryptBlock(key domaintypes.CipherKey, in domaintypes.Block) (domaintypes.Block, error)
	// CheckValue returns the hex key check value identifying key.
	CheckValue(key domaintypes.CipherKey) (string, error)
	// SelfTest runs the known-answer vectors.
	SelfTest() error
}
