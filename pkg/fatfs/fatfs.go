package fatfs

import "os"

// Filesystem is the set of capabilities the utility layer needs from a
// FAT driver. VolumeFS in this package implements it for RAM and image
// backed volumes; a full on-media FAT driver satisfies the same
// interface on hardware targets.
//
// Mount with force=true attaches and verifies the volume immediately,
// returning any device error right away. With force=false the volume is
// only scheduled and the device is brought up on first access, matching
// f_mount's deferred-mount option.
type Filesystem interface {
	Mount(vol Volume, force bool) error
	Unmount(vol Volume) error

	// OpenFile opens the named file, e.g. "SD:logs/boot.txt". Flags are
	// the usual os.O_* values.
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// FreeClusters reports the number of free and total allocation
	// clusters on a mounted volume.
	FreeClusters(vol Volume) (free, total uint32, err error)

	// Geometry reports the cluster and sector layout of a mounted volume.
	Geometry(vol Volume) (Geometry, error)
}

// File is an open handle on a volume. The handle is owned by whoever
// opened it; helper routines that take a File never close it.
//
// A File is not safe for concurrent use. The caller must not issue a
// second operation against the same handle while one is in progress.
type File interface {
	// Read reads up to len(p) bytes from the current position and
	// advances it. A read at end of file returns 0, io.EOF.
	Read(p []byte) (int, error)
	// Write writes len(p) bytes at the current position and advances it.
	Write(p []byte) (int, error)
	// Seek moves the read/write position to an absolute byte offset.
	Seek(offset int64) error
	// Tell reports the current read/write position.
	Tell() int64
	// Size reports the current size of the file in bytes.
	Size() (int64, error)
	// Truncate discards everything at and beyond the current position.
	Truncate() error
	Sync() error
	Close() error
}

// Geometry describes the allocation layout of a mounted volume.
type Geometry struct {
	SectorsPerCluster uint32
	BytesPerSector    uint32
}

// ClusterBytes returns the size of one allocation cluster in bytes.
func (g Geometry) ClusterBytes() uint64 {
	return uint64(g.SectorsPerCluster) * uint64(g.BytesPerSector)
}
