//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MapAnonZeroedAndWritable(t *testing.T) {
	data, cleanup, err := MapAnon(4096)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, cleanup())
	}()

	require.Len(t, data, 4096)
	for i, b := range data {
		require.Zero(t, b, "byte %d not zeroed", i)
	}
	data[0] = 0xAA
	data[4095] = 0x55
	require.Equal(t, byte(0xAA), data[0])
	require.Equal(t, byte(0x55), data[4095])
	require.NoError(t, Sync(data))
}

func Test_MapAnonZeroLength(t *testing.T) {
	data, cleanup, err := MapAnon(0)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, cleanup)
	require.NoError(t, cleanup())
}

func Test_MapAnonNegative(t *testing.T) {
	_, _, err := MapAnon(-1)
	require.Error(t, err)
}

func Test_MapFilePersists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	path := filepath.Join(t.TempDir(), "block.bin")

	data, cleanup, err := MapFile(path, 16)
	require.NoError(t, err)
	require.Len(t, data, 16)
	copy(data, []byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, Sync(data))
	require.NoError(t, cleanup())
	require.NoError(t, cleanup(), "double cleanup should be a no-op")

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, onDisk, 16)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, onDisk[:4])

	again, cleanup2, err := MapFile(path, 16)
	require.NoError(t, err)
	defer cleanup2()
	require.Equal(t, byte(0xef), again[3])
}

func Test_MapFileInvalidSize(t *testing.T) {
	_, _, err := MapFile(filepath.Join(t.TempDir(), "x.bin"), 0)
	require.Error(t, err)
}
