package fatfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeDriveNumbers(t *testing.T) {
	for vol, want := range map[Volume]uint8{
		VolumeSD:       0,
		VolumeUSB:      1,
		VolumeSDRAM:    2,
		VolumeSPIFlash: 3,
	} {
		pdrv, err := vol.Drive()
		require.NoError(t, err)
		assert.Equal(t, want, pdrv, "volume %s", vol)
	}
}

func TestVolumeDriveInvalid(t *testing.T) {
	_, err := Volume("NVME:").Drive()
	assert.ErrorIs(t, err, FileResultInvalidDrive)

	_, err = Volume("SD").Drive() // missing colon
	assert.ErrorIs(t, err, FileResultInvalidDrive)
}

func TestSplitPath(t *testing.T) {
	vol, rel, err := SplitPath("SD:logs/boot.txt")
	require.NoError(t, err)
	assert.Equal(t, VolumeSD, vol)
	assert.Equal(t, "logs/boot.txt", rel)

	vol, rel, err = SplitPath("SDRAM:x")
	require.NoError(t, err)
	assert.Equal(t, VolumeSDRAM, vol)
	assert.Equal(t, "x", rel)
}

func TestSplitPathInvalid(t *testing.T) {
	_, _, err := SplitPath("no-volume.txt")
	assert.ErrorIs(t, err, FileResultInvalidDrive)

	_, _, err = SplitPath("NVME:file.txt")
	assert.ErrorIs(t, err, FileResultInvalidDrive)
}

func TestBlockDeviceRegistry(t *testing.T) {
	_, err := lookupBlockDevice(7)
	assert.ErrorIs(t, err, FileResultNotReady)

	dev := NewRAMDisk(1 << 16)
	RegisterBlockDevice(7, dev)
	defer UnregisterBlockDevice(7)

	got, err := lookupBlockDevice(7)
	require.NoError(t, err)
	assert.Same(t, dev, got)

	UnregisterBlockDevice(7)
	_, err = lookupBlockDevice(7)
	assert.ErrorIs(t, err, FileResultNotReady)
}
