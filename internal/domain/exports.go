package domain

import (
	interfaces "aesguard/internal/domain/interfaces"
	types "aesguard/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Block          = types.Block
	CipherKey      = types.CipherKey
	KeySize        = types.KeySize
	KeyLengthError = types.KeyLengthError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PrimitiveService = interfaces.PrimitiveService
)

const (
	BlockSize = types.BlockSize
	AES128    = types.AES128
	AES192    = types.AES192
	AES256    = types.AES256
)

var (
	ErrInvalidKeyLength = types.ErrInvalidKeyLength
	SupportedKeySizes   = types.SupportedKeySizes
	ParseBlock          = types.ParseBlock
)
