package fatfs

import "fmt"

var _ BlockDevice = (*RAMDisk)(nil)

// RAMDisk is a BlockDevice held entirely in memory, the equivalent of an
// SDRAM-backed volume. Contents are lost on power down, so a fresh
// RAMDisk always needs its volume (re)created on top of it.
type RAMDisk struct {
	data []byte
}

// NewRAMDisk allocates a memory-backed device of the given size, rounded
// down to a whole number of sectors.
func NewRAMDisk(size uint64) *RAMDisk {
	size -= size % SectorSize
	return &RAMDisk{data: make([]byte, size)}
}

func (d *RAMDisk) Initialize() error { return nil }

func (d *RAMDisk) Status() error {
	if len(d.data) == 0 {
		return fmt.Errorf("ramdisk: zero capacity")
	}
	return nil
}

func (d *RAMDisk) ReadSectors(sector uint64, count uint32, buff []byte) error {
	off, length, err := d.extent(sector, count, len(buff))
	if err != nil {
		return err
	}
	copy(buff[:length], d.data[off:off+length])
	return nil
}

func (d *RAMDisk) WriteSectors(sector uint64, count uint32, buff []byte) error {
	off, length, err := d.extent(sector, count, len(buff))
	if err != nil {
		return err
	}
	copy(d.data[off:off+length], buff[:length])
	return nil
}

func (d *RAMDisk) extent(sector uint64, count uint32, buflen int) (off, length uint64, err error) {
	off = sector * SectorSize
	length = uint64(count) * SectorSize
	if off+length > uint64(len(d.data)) {
		return 0, 0, fmt.Errorf("ramdisk: sector range %d+%d out of bounds", sector, count)
	}
	if uint64(buflen) < length {
		return 0, 0, fmt.Errorf("ramdisk: buffer too small: need %d bytes, got %d", length, buflen)
	}
	return off, length, nil
}

func (d *RAMDisk) GetSectorSize() uint64  { return SectorSize }
func (d *RAMDisk) GetSectorCount() uint64 { return uint64(len(d.data)) / SectorSize }
