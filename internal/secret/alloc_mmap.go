//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package secret

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func allocate(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false, fmt.Errorf("secret: mmap: %w", err)
	}
	// mlock fails under a low RLIMIT_MEMLOCK; the buffer is still erased
	// on Close, just not pinned.
	locked := unix.Mlock(data) == nil
	excludeFromCoreDump(data)
	return data, locked, nil
}

func release(data []byte, locked bool) error {
	var first error
	if locked {
		if err := unix.Munlock(data); err != nil {
			first = fmt.Errorf("secret: munlock: %w", err)
		}
	}
	if err := unix.Munmap(data); err != nil && first == nil {
		first = fmt.Errorf("secret: munmap: %w", err)
	}
	return first
}
