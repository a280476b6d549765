package fatfs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImage(t *testing.T, sectors int64) *ImageFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, os.WriteFile(path, make([]byte, sectors*SectorSize), 0o644))

	img, err := NewImageFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { img.Close() })
	return img
}

func TestImageFileSectorRoundtrip(t *testing.T) {
	img := newTestImage(t, 64)
	require.NoError(t, img.Initialize())

	want := bytes.Repeat([]byte{0xa5}, 2*SectorSize)
	require.NoError(t, img.WriteSectors(10, 2, want))

	got := make([]byte, 2*SectorSize)
	require.NoError(t, img.ReadSectors(10, 2, got))
	assert.Equal(t, want, got)

	// Neighboring sectors stay zeroed.
	require.NoError(t, img.ReadSectors(9, 1, got[:SectorSize]))
	assert.Equal(t, make([]byte, SectorSize), got[:SectorSize])
}

func TestImageFileGeometry(t *testing.T) {
	img := newTestImage(t, 64)
	assert.EqualValues(t, SectorSize, img.GetSectorSize())
	assert.EqualValues(t, 64, img.GetSectorCount())
}

func TestImageFileShortBuffer(t *testing.T) {
	img := newTestImage(t, 64)
	buf := make([]byte, SectorSize-1)
	assert.Error(t, img.ReadSectors(0, 1, buf))
	assert.Error(t, img.WriteSectors(0, 1, buf))
}

func TestImageFileClosed(t *testing.T) {
	img := newTestImage(t, 8)
	require.NoError(t, img.Close())

	assert.Error(t, img.Status())
	assert.Error(t, img.ReadSectors(0, 1, make([]byte, SectorSize)))
	assert.Zero(t, img.GetSectorCount())
	assert.NoError(t, img.Close(), "double close is harmless")
}

func TestRAMDiskSectorRoundtrip(t *testing.T) {
	d := NewRAMDisk(1 << 16) // 128 sectors
	require.NoError(t, d.Initialize())
	require.NoError(t, d.Status())
	assert.EqualValues(t, 128, d.GetSectorCount())

	want := bytes.Repeat([]byte{0x5a}, SectorSize)
	require.NoError(t, d.WriteSectors(127, 1, want))

	got := make([]byte, SectorSize)
	require.NoError(t, d.ReadSectors(127, 1, got))
	assert.Equal(t, want, got)
}

func TestRAMDiskBounds(t *testing.T) {
	d := NewRAMDisk(1 << 16)
	buf := make([]byte, 2*SectorSize)
	assert.Error(t, d.ReadSectors(127, 2, buf), "range runs past end of device")
	assert.Error(t, d.WriteSectors(128, 1, buf))
	assert.Error(t, d.ReadSectors(0, 1, buf[:1]), "buffer shorter than one sector")
}

func TestRAMDiskSizeRounding(t *testing.T) {
	d := NewRAMDisk(SectorSize*4 + 100)
	assert.EqualValues(t, 4, d.GetSectorCount())

	assert.Error(t, NewRAMDisk(0).Status())
}
