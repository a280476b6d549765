package fatutil

import "github.com/OffBroadway/fatutil/pkg/fatfs"

// Size reports the capacity of a mounted volume in bytes. Both values
// are whole multiples of the volume's cluster size.
type Size struct {
	Total uint64
	Free  uint64
}

// DriveSize queries a mounted volume for its total and free space.
// Errors from the filesystem layer (volume not mounted, disk error) are
// returned untranslated.
func DriveSize(fsys fatfs.Filesystem, vol fatfs.Volume) (Size, error) {
	free, total, err := fsys.FreeClusters(vol)
	if err != nil {
		return Size{}, err
	}
	geom, err := fsys.Geometry(vol)
	if err != nil {
		return Size{}, err
	}
	clusterBytes := geom.ClusterBytes()
	return Size{
		Total: uint64(total) * clusterBytes,
		Free:  uint64(free) * clusterBytes,
	}, nil
}
