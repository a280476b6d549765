package fatutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OffBroadway/fatutil/pkg/fatfs"
)

func TestDriveSizeUnmountedVolume(t *testing.T) {
	fsys := fatfs.NewVolumeFS()

	_, err := DriveSize(fsys, fatfs.VolumeSD)
	assert.ErrorIs(t, err, fatfs.FileResultNotEnabled)
}

func TestDriveSizeInvalidVolume(t *testing.T) {
	fsys := fatfs.NewVolumeFS()

	_, err := DriveSize(fsys, fatfs.Volume("NVME:"))
	assert.ErrorIs(t, err, fatfs.FileResultInvalidDrive)
}

func TestDriveSize(t *testing.T) {
	fsys := newTestVolume(t)

	geom, err := fsys.Geometry(fatfs.VolumeSDRAM)
	require.NoError(t, err)
	clusterBytes := geom.ClusterBytes()

	size, err := DriveSize(fsys, fatfs.VolumeSDRAM)
	require.NoError(t, err)

	assert.LessOrEqual(t, size.Free, size.Total)
	assert.Zero(t, size.Total%clusterBytes, "total must be a whole number of clusters")
	assert.Zero(t, size.Free%clusterBytes, "free must be a whole number of clusters")

	// 1 MiB device with default geometry: 256 clusters of 4 KiB.
	assert.EqualValues(t, 1<<20, size.Total)
	assert.Equal(t, size.Total, size.Free, "fresh volume is all free")
}

func TestDriveSizeAccountsForFiles(t *testing.T) {
	fsys := newTestVolume(t)

	before, err := DriveSize(fsys, fatfs.VolumeSDRAM)
	require.NoError(t, err)

	// 5000 bytes lands in ceil(5000/4096) = 2 clusters.
	f, err := fsys.OpenFile("SDRAM:blob.bin", os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	_, err = f.Write(make([]byte, 5000))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	after, err := DriveSize(fsys, fatfs.VolumeSDRAM)
	require.NoError(t, err)

	geom, err := fsys.Geometry(fatfs.VolumeSDRAM)
	require.NoError(t, err)

	assert.Equal(t, after.Total, before.Total)
	assert.Equal(t, before.Free-2*geom.ClusterBytes(), after.Free)
}
