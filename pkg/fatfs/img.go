package fatfs

import (
	"fmt"
	"os"
)

const (
	// SectorSize is the sector size used by the block devices in this
	// package. 512 bytes is what SD cards and USB mass storage report.
	SectorSize = 512
)

// assert that ImageFile implements the BlockDevice interface
var _ BlockDevice = (*ImageFile)(nil)

// ImageFile is a BlockDevice backed by a disk image file on the host
// filesystem. It stands in for the USB mass-storage transport during
// development and tests.
type ImageFile struct {
	file *os.File
}

// NewImageFile opens (or creates) a disk image at path.
func NewImageFile(path string) (*ImageFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	return &ImageFile{file: f}, nil
}

func (img *ImageFile) Initialize() error {
	return img.Status()
}

func (img *ImageFile) Status() error {
	if img.file == nil {
		return fmt.Errorf("image: file is not open")
	}
	return nil
}

// ReadSectors reads count sectors starting at sector into buff.
func (img *ImageFile) ReadSectors(sector uint64, count uint32, buff []byte) error {
	if img.file == nil {
		return fmt.Errorf("image: file is not open")
	}
	length := int64(count) * SectorSize
	if int64(len(buff)) < length {
		return fmt.Errorf("image: buffer too small: need %d bytes, got %d", length, len(buff))
	}
	n, err := img.file.ReadAt(buff[:length], int64(sector)*SectorSize)
	if err != nil {
		return fmt.Errorf("image: failed to read sector %d: %w", sector, err)
	}
	if int64(n) != length {
		return fmt.Errorf("image: short read: expected %d bytes, got %d", length, n)
	}
	return nil
}

// WriteSectors writes count sectors from buff starting at sector.
func (img *ImageFile) WriteSectors(sector uint64, count uint32, buff []byte) error {
	if img.file == nil {
		return fmt.Errorf("image: file is not open")
	}
	length := int64(count) * SectorSize
	if int64(len(buff)) < length {
		return fmt.Errorf("image: buffer too small: need %d bytes, got %d", length, len(buff))
	}
	n, err := img.file.WriteAt(buff[:length], int64(sector)*SectorSize)
	if err != nil {
		return fmt.Errorf("image: failed to write sector %d: %w", sector, err)
	}
	if int64(n) != length {
		return fmt.Errorf("image: short write: expected %d bytes, wrote %d", length, n)
	}
	return nil
}

func (img *ImageFile) GetSectorSize() uint64 {
	return SectorSize
}

func (img *ImageFile) GetSectorCount() uint64 {
	if img.file == nil {
		return 0
	}
	info, err := img.file.Stat()
	if err != nil {
		return 0
	}
	return uint64(info.Size() / SectorSize)
}

// Close should be called when the image is no longer needed. The device
// must not be registered at that point.
func (img *ImageFile) Close() error {
	if img.file == nil {
		return nil
	}
	err := img.file.Close()
	img.file = nil
	return err
}
