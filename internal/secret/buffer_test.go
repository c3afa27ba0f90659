package secret_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aesguard/internal/crypto"
	"aesguard/internal/domain"
	"aesguard/internal/secret"
	"aesguard/internal/util/memzero"
)

func TestNew_ZeroInitialised(t *testing.T) {
	b, err := secret.New(64)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, 64, b.Len())
	assert.Equal(t, 4, b.Blocks())
	assert.True(t, memzero.IsZero(b.Bytes()))
}

func TestNew_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := secret.New(n)
		assert.Error(t, err, "size %d", n)
	}
}

func TestNewFromBytes_ErasesSource(t *testing.T) {
	src := []byte("YELLOW SUBMARINE")
	b, err := secret.NewFromBytes(src)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, []byte("YELLOW SUBMARINE"), b.Bytes())
	assert.True(t, memzero.IsZero(src))

	_, err = secret.NewFromBytes(nil)
	assert.Error(t, err)
}

func TestErase(t *testing.T) {
	for _, n := range []int{1, 16, 4096} {
		b, err := secret.NewFromBytes(bytes.Repeat([]byte{0xA5}, n))
		require.NoError(t, err)

		b.Erase()
		assert.True(t, memzero.IsZero(b.Bytes()), "size %d", n)
		assert.Equal(t, n, b.Len())
		require.NoError(t, b.Close())
	}
}

func TestClose_Idempotent(t *testing.T) {
	b, err := secret.NewFromBytes([]byte{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Locked())
	assert.NotPanics(t, b.Erase)
}

func TestClose_ReadPanics(t *testing.T) {
	b, err := secret.New(32)
	require.NoError(t, err)
	require.NoError(t, b.Close())

	assert.Panics(t, func() { b.Bytes() })
	assert.Panics(t, func() { b.Block(0) })
}

func TestBlock_OutOfRange(t *testing.T) {
	b, err := secret.New(40)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, 2, b.Blocks())
	assert.NotPanics(t, func() { b.Block(1) })
	assert.Panics(t, func() { b.Block(2) })
	assert.Panics(t, func() { b.Block(-1) })
}

func TestBlock_InPlaceTransform(t *testing.T) {
	key, err := secret.NewFromBytes(make([]byte, 16))
	require.NoError(t, err)
	defer key.Close()

	data, err := secret.New(2 * domain.BlockSize)
	require.NoError(t, err)
	defer data.Close()

	err = crypto.WithSchedule(key.Key(), func(s *crypto.KeySchedule) error {
		blk := data.Block(1)
		s.Encrypt(blk, blk)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, memzero.IsZero(data.Bytes()[:domain.BlockSize]))
	assert.Equal(t, "66e94bd4ef8a2c3b884cfa59ca342b2e", data.Block(1).Hex())
}
