//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// MapAnon allocates size zeroed bytes when mmap is not available.
func MapAnon(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmfile: negative size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}

// MapFile reads the file at path into memory when mmap is not available.
// Contents are written back when the returned cleanup runs.
func MapFile(path string, size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid size %d", size)
	}
	data := make([]byte, size)
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, nil, err
	}
	copy(data, existing)
	cleanup := func() error {
		return os.WriteFile(path, data, 0o644)
	}
	return data, cleanup, nil
}

// Sync is a no-op without mmap; MapFile persists on cleanup.
func Sync(_ []byte) error {
	return nil
}
