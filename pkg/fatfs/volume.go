package fatfs

import "strings"

// Volume is a short logical drive identifier, always including the
// trailing colon. Paths are addressed as "SD:logs/boot.txt"; several
// volumes can be mounted at the same time and are told apart by this
// prefix on every call.
type Volume string

const (
	VolumeSD       Volume = "SD:"       // drive 0, SD card over SPI or SDIO
	VolumeUSB      Volume = "USB:"      // drive 1, USB mass storage
	VolumeSDRAM    Volume = "SDRAM:"    // drive 2, RAM-backed volume
	VolumeSPIFlash Volume = "SPIFLASH:" // drive 3, SPI flash (no low level driver yet)
)

var volumeDrives = map[Volume]uint8{
	VolumeSD:       0,
	VolumeUSB:      1,
	VolumeSDRAM:    2,
	VolumeSPIFlash: 3,
}

// Drive resolves the volume name to its physical drive number.
func (v Volume) Drive() (uint8, error) {
	pdrv, ok := volumeDrives[v]
	if !ok {
		return 0, FileResultInvalidDrive
	}
	return pdrv, nil
}

func (v Volume) String() string { return string(v) }

// SplitPath splits a path of the form "SD:dir/file.txt" into its volume
// and the volume-relative remainder. A path without a recognized volume
// prefix is invalid: there is no notion of a current drive.
func SplitPath(path string) (Volume, string, error) {
	i := strings.IndexByte(path, ':')
	if i < 0 {
		return "", "", FileResultInvalidDrive
	}
	vol := Volume(path[:i+1])
	if _, ok := volumeDrives[vol]; !ok {
		return "", "", FileResultInvalidDrive
	}
	return vol, path[i+1:], nil
}

var deviceMap = make(map[uint8]BlockDevice)

// RegisterBlockDevice associates a BlockDevice with a drive number.
// Mounting a volume whose drive has no registered device fails with
// FileResultNotReady.
func RegisterBlockDevice(pdrv uint8, dev BlockDevice) {
	deviceMap[pdrv] = dev
}

func UnregisterBlockDevice(pdrv uint8) {
	delete(deviceMap, pdrv)
}

func lookupBlockDevice(pdrv uint8) (BlockDevice, error) {
	dev, ok := deviceMap[pdrv]
	if !ok {
		return nil, FileResultNotReady
	}
	return dev, nil
}
