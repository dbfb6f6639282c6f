//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapAnon maps size bytes of private anonymous memory. The pages start zeroed
// and are never touched by the garbage collector.
func MapAnon(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmfile: negative size %d", size)
	}
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: anonymous map of %d bytes: %w", size, err)
	}
	return data, unmapper(data), nil
}

// MapFile maps the file at path read-write and shared, creating it and
// extending it to size bytes when it is shorter.
func MapFile(path string, size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() < int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			return nil, nil, fmt.Errorf("mmfile: extend %s: %w", path, err)
		}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	return data, unmapper(data), nil
}

// Sync flushes a shared file mapping to disk. It is a no-op for anonymous
// mappings.
func Sync(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func unmapper(data []byte) func() error {
	return func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
}
