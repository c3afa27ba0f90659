package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aesguard/internal/util/memzero"
)

func TestErase_ZeroesRoundKeys(t *testing.T) {
	s, err := DeriveSchedule(bytes.Repeat([]byte{0x3c}, 32))
	require.NoError(t, err)

	block := s.block
	view := memzero.Opaque(block)
	if view == nil {
		s.Erase()
		t.Skip("cipher state is not viewable on this build")
	}
	require.False(t, memzero.IsZero(view))

	s.Erase()
	assert.True(t, memzero.IsZero(view))
	assert.Nil(t, s.block)
}
