package fatutil

import "github.com/OffBroadway/fatutil/pkg/fatfs"

// Pin reads the level of a single digital input. Read reports true for
// logic high. A pin read has no error path at this level.
type Pin interface {
	Read() bool
}

// PinFunc adapts a plain function to the Pin interface.
type PinFunc func() bool

func (f PinFunc) Read() bool { return f() }

// Detector reports whether a card is present, from a card-detect pin
// wired active-low: the pin reads low while a card sits in the slot.
// Boards without a card-detect line simply never construct a Detector.
type Detector struct {
	pin Pin
}

func NewDetector(pin Pin) (*Detector, error) {
	if pin == nil {
		return nil, fatfs.FileResultInvalidParameter
	}
	return &Detector{pin: pin}, nil
}

// Inserted reads the pin and reports card presence. The level is read
// fresh on every call, never cached.
func (d *Detector) Inserted() bool {
	return !d.pin.Read()
}

// WriteProtect reports the position of a card's write-protect switch,
// also wired active-low: the pin reads low while writing is allowed.
type WriteProtect struct {
	pin Pin
}

func NewWriteProtect(pin Pin) (*WriteProtect, error) {
	if pin == nil {
		return nil, fatfs.FileResultInvalidParameter
	}
	return &WriteProtect{pin: pin}, nil
}

// Protected reports whether the card is write protected.
func (w *WriteProtect) Protected() bool {
	return w.pin.Read()
}
