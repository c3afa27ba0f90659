// Package memzero erases sensitive memory in a way the compiler cannot elide.
//
// Zero is the primitive everything else builds on: the store happens behind a
// non-inlinable call and the slice is kept alive past the loop, so dead-store
// elimination has nothing to prove the writes unobserved.
package memzero

import (
	"crypto/subtle"
	"reflect"
	"runtime"
	"unsafe"
)

// Zero overwrites b with zeros. A nil or empty slice is a no-op.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	// Keep b reachable until after the stores.
	runtime.KeepAlive(b)
}

// ZeroAll erases every slice in bs.
func ZeroAll(bs ...[]byte) {
	for _, b := range bs {
		Zero(b)
	}
}

// IsZero reports whether every byte of b is zero. It runs in time that
// depends only on len(b).
func IsZero(b []byte) bool {
	var acc byte
	for _, c := range b {
		acc |= c
	}
	return subtle.ConstantTimeByteEq(acc, 0) == 1
}

// Opaque returns a byte view of the value v points to. v must be a non-nil
// pointer to a struct or array whose type holds no pointers; anything else
// yields nil. The view aliases v, so writes through it change v.
func Opaque(v any) []byte {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil
	}
	t := rv.Type().Elem()
	if t.Kind() != reflect.Struct && t.Kind() != reflect.Array {
		return nil
	}
	if t.Size() == 0 || !pointerFree(t) {
		return nil
	}
	return unsafe.Slice((*byte)(rv.UnsafePointer()), t.Size())
}

// ZeroOpaque erases the memory behind v as viewed by Opaque and reports
// whether anything was erased.
func ZeroOpaque(v any) bool {
	b := Opaque(v)
	if b == nil {
		return false
	}
	Zero(b)
	runtime.KeepAlive(v)
	return true
}

// pointerFree reports whether values of t contain no pointers the garbage
// collector tracks. Zeroing those through a byte view would skip write
// barriers.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
