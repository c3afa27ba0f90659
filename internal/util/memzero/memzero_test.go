package memzero_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aesguard/internal/util/memzero"
)

func filled(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i%255 + 1)
	}
	return b
}

func TestZero_Lengths(t *testing.T) {
	for _, n := range []int{0, 1, 16, 4096} {
		b := filled(n)
		memzero.Zero(b)
		assert.Equal(t, make([]byte, n), b, "length %d", n)
		assert.True(t, memzero.IsZero(b), "length %d", n)
	}
}

func TestZero_Nil(t *testing.T) {
	assert.NotPanics(t, func() { memzero.Zero(nil) })
}

func TestZero_SubsliceOnly(t *testing.T) {
	b := bytes.Repeat([]byte{0xAA}, 32)
	memzero.Zero(b[8:24])

	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 8), b[:8])
	assert.True(t, memzero.IsZero(b[8:24]))
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 8), b[24:])
}

func TestZeroAll(t *testing.T) {
	a, b := filled(16), filled(33)
	memzero.ZeroAll(a, nil, b)
	assert.True(t, memzero.IsZero(a))
	assert.True(t, memzero.IsZero(b))
}

func TestIsZero(t *testing.T) {
	assert.True(t, memzero.IsZero(nil))
	assert.True(t, memzero.IsZero(make([]byte, 64)))

	b := make([]byte, 64)
	b[63] = 1
	assert.False(t, memzero.IsZero(b))
}

type rounds struct {
	n   int
	enc [60]uint32
	dec [60]uint32
}

type withPointer struct {
	n    int
	next *withPointer
}

func TestZeroOpaque_PointerFreeStruct(t *testing.T) {
	r := &rounds{n: 10}
	for i := range r.enc {
		r.enc[i] = uint32(i) + 1
		r.dec[i] = ^uint32(i)
	}

	view := memzero.Opaque(r)
	require.NotNil(t, view)
	assert.False(t, memzero.IsZero(view))

	require.True(t, memzero.ZeroOpaque(r))
	assert.Equal(t, rounds{}, *r)
}

func TestZeroOpaque_Array(t *testing.T) {
	a := &[16]byte{1, 2, 3}
	require.True(t, memzero.ZeroOpaque(a))
	assert.Equal(t, [16]byte{}, *a)
}

func TestZeroOpaque_Refused(t *testing.T) {
	p := &withPointer{n: 7}
	p.next = p

	cases := map[string]any{
		"nil":          nil,
		"nil pointer":  (*rounds)(nil),
		"non pointer":  rounds{},
		"has pointers": p,
		"slice":        &[]byte{1},
		"empty struct": &struct{}{},
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, memzero.Opaque(v))
			assert.False(t, memzero.ZeroOpaque(v))
		})
	}
	assert.Equal(t, 7, p.n)
	assert.Same(t, p, p.next)
}
