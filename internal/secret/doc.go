// Package secret holds sensitive bytes (keys, plaintext blocks) in a buffer
// that is erased before its storage is released.
//
// On Linux, macOS and the BSDs the memory comes from an anonymous mmap
// outside the Go heap, so the garbage collector never copies it. It is
// mlocked when the process is allowed to, and on Linux excluded from core
// dumps. Elsewhere the buffer lives on the heap and only the erase guarantee
// holds.
package secret
