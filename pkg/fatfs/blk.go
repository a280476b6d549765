package fatfs

// BlockDevice is the interface a physical transport must provide so a
// volume can be mounted on top of it. Implementations in this package
// exist for disk image files (ImageFile) and plain memory (RAMDisk);
// SD-over-SPI or SDIO transports plug in the same way on hardware.
type BlockDevice interface {
	ReadSectors(sector uint64, count uint32, buff []byte) error
	WriteSectors(sector uint64, count uint32, buff []byte) error
	GetSectorSize() uint64
	GetSectorCount() uint64
	Initialize() error
	Status() error
}
