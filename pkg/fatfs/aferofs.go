package fatfs

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// DefaultGeometry is used for volumes added without an explicit layout:
// 512-byte sectors in clusters of 8, the layout a small SD card formats to.
var DefaultGeometry = Geometry{SectorsPerCluster: 8, BytesPerSector: 512}

// VolumeFS provides the Filesystem contract on top of afero file stores,
// one per volume, with cluster accounting taken from the BlockDevice
// registered for the volume's drive number. It backs the RAM-disk style
// volumes (and tests); reading FAT structures off real media is the job
// of a full FAT driver behind the same interface.
//
// VolumeFS is not safe for concurrent use; the host is expected to drive
// it from a single goroutine.
type VolumeFS struct {
	vols map[Volume]*mountedVolume
}

type mountedVolume struct {
	store    afero.Fs
	geom     Geometry
	dev      BlockDevice
	attached bool // Mount has been called and not undone by Unmount
	ready    bool // device initialized and verified
}

func NewVolumeFS() *VolumeFS {
	return &VolumeFS{vols: make(map[Volume]*mountedVolume)}
}

// AddVolume gives a volume its work area: the file store holding its
// contents and the cluster layout used for size accounting. A nil store
// gets a fresh in-memory store. AddVolume must precede Mount, the same
// way f_mount must be handed a filesystem work area.
func (v *VolumeFS) AddVolume(vol Volume, store afero.Fs, geom Geometry) error {
	if _, err := vol.Drive(); err != nil {
		return err
	}
	if store == nil {
		store = afero.NewMemMapFs()
	}
	if geom == (Geometry{}) {
		geom = DefaultGeometry
	}
	if geom.SectorsPerCluster == 0 || geom.BytesPerSector == 0 {
		return FileResultInvalidParameter
	}
	v.vols[vol] = &mountedVolume{store: store, geom: geom}
	return nil
}

func (v *VolumeFS) Mount(vol Volume, force bool) error {
	mv, err := v.volume(vol)
	if err != nil {
		return err
	}
	mv.attached = true
	mv.ready = false
	if force {
		return v.bringUp(vol, mv)
	}
	return nil
}

func (v *VolumeFS) Unmount(vol Volume) error {
	mv, err := v.volume(vol)
	if err != nil {
		return err
	}
	mv.attached = false
	mv.ready = false
	mv.dev = nil
	return nil
}

func (v *VolumeFS) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	vol, rel, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	mv, err := v.mounted(vol)
	if err != nil {
		return nil, err
	}
	f, err := mv.store.OpenFile(rel, flag, perm)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &volFile{f: f}, nil
}

func (v *VolumeFS) FreeClusters(vol Volume) (free, total uint32, err error) {
	mv, err := v.mounted(vol)
	if err != nil {
		return 0, 0, err
	}
	clusterBytes := mv.geom.ClusterBytes()
	total64 := mv.dev.GetSectorCount() / uint64(mv.geom.SectorsPerCluster)
	var used uint64
	err = afero.Walk(mv.store, "/", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != "" && path != "." && path != "/" {
				used++ // a directory occupies at least its own cluster
			}
			return nil
		}
		used += (uint64(info.Size()) + clusterBytes - 1) / clusterBytes
		return nil
	})
	if err != nil {
		return 0, 0, mapStoreError(err)
	}
	if used > total64 {
		used = total64
	}
	return uint32(total64 - used), uint32(total64), nil
}

func (v *VolumeFS) Geometry(vol Volume) (Geometry, error) {
	mv, err := v.mounted(vol)
	if err != nil {
		return Geometry{}, err
	}
	return mv.geom, nil
}

// Store exposes the raw afero store behind a mounted volume, for hosts
// that want to serve the volume through an afero-shaped surface.
func (v *VolumeFS) Store(vol Volume) (afero.Fs, error) {
	mv, err := v.mounted(vol)
	if err != nil {
		return nil, err
	}
	return mv.store, nil
}

func (v *VolumeFS) volume(vol Volume) (*mountedVolume, error) {
	if _, err := vol.Drive(); err != nil {
		return nil, err
	}
	mv, ok := v.vols[vol]
	if !ok {
		return nil, FileResultNotEnabled
	}
	return mv, nil
}

// mounted returns the volume state, bringing the device up on first
// access when the mount was deferred.
func (v *VolumeFS) mounted(vol Volume) (*mountedVolume, error) {
	mv, err := v.volume(vol)
	if err != nil {
		return nil, err
	}
	if !mv.attached {
		return nil, FileResultNotEnabled
	}
	if !mv.ready {
		if err := v.bringUp(vol, mv); err != nil {
			return nil, err
		}
	}
	return mv, nil
}

func (v *VolumeFS) bringUp(vol Volume, mv *mountedVolume) error {
	pdrv, err := vol.Drive()
	if err != nil {
		return err
	}
	dev, err := lookupBlockDevice(pdrv)
	if err != nil {
		return err
	}
	if err := dev.Initialize(); err != nil {
		return FileResultNotReady
	}
	if err := dev.Status(); err != nil {
		return FileResultNotReady
	}
	mv.dev = dev
	mv.ready = true
	return nil
}

func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return FileResultNoFile
	case os.IsExist(err):
		return FileResultExist
	case os.IsPermission(err):
		return FileResultDenied
	default:
		return err
	}
}

// volFile adapts an afero file to the FatFs-shaped File contract with an
// explicit absolute position.
type volFile struct {
	f   afero.File
	pos int64
}

var _ File = (*volFile)(nil)

func (f *volFile) Read(p []byte) (int, error) {
	n, err := f.f.Read(p)
	f.pos += int64(n)
	return n, err
}

func (f *volFile) Write(p []byte) (int, error) {
	n, err := f.f.Write(p)
	f.pos += int64(n)
	return n, err
}

func (f *volFile) Seek(offset int64) error {
	if offset < 0 {
		return FileResultInvalidParameter
	}
	if _, err := f.f.Seek(offset, 0); err != nil {
		return mapStoreError(err)
	}
	f.pos = offset
	return nil
}

func (f *volFile) Tell() int64 { return f.pos }

func (f *volFile) Size() (int64, error) {
	fi, err := f.f.Stat()
	if err != nil {
		return 0, mapStoreError(err)
	}
	return fi.Size(), nil
}

func (f *volFile) Truncate() error {
	return mapStoreError(f.f.Truncate(f.pos))
}

func (f *volFile) Sync() error  { return mapStoreError(f.f.Sync()) }
func (f *volFile) Close() error { return mapStoreError(f.f.Close()) }
