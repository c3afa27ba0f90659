package types

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"aesguard/internal/util/memzero"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Block is a single cipher block. Its fixed size makes a short or long block
// unrepresentable.
type Block [BlockSize]byte

// Slice returns the block as a []byte aliasing b.
func (b *Block) Slice() []byte { return b[:] }

// Erase zeroes the block.
func (b *Block) Erase() { memzero.Zero(b[:]) }

// Hex returns the lowercase hex encoding of the block.
func (b Block) Hex() string { return hex.EncodeToString(b[:]) }

// LogValue keeps block contents out of logs; a block may hold plaintext.
func (b Block) LogValue() slog.Value { return slog.StringValue(redacted) }

// ParseBlock decodes exactly one hex-encoded block.
func ParseBlock(s string) (Block, error) {
	var b Block
	if hex.DecodedLen(len(s)) != BlockSize {
		return b, fmt.Errorf("block must be %d hex characters, got %d", 2*BlockSize, len(s))
	}
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		b.Erase()
		return b, fmt.Errorf("decode block: %w", err)
	}
	return b, nil
}
