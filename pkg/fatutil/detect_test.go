package fatutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OffBroadway/fatutil/pkg/fatfs"
)

func TestDetectorActiveLow(t *testing.T) {
	level := true // pulled high: slot empty
	det, err := NewDetector(PinFunc(func() bool { return level }))
	require.NoError(t, err)

	assert.False(t, det.Inserted())

	level = false // card pulls the line low
	assert.True(t, det.Inserted())

	level = true
	assert.False(t, det.Inserted(), "level must be re-read on every call")
}

func TestDetectorRequiresPin(t *testing.T) {
	_, err := NewDetector(nil)
	assert.ErrorIs(t, err, fatfs.FileResultInvalidParameter)
}

func TestWriteProtect(t *testing.T) {
	level := false // low: write enabled
	wp, err := NewWriteProtect(PinFunc(func() bool { return level }))
	require.NoError(t, err)

	assert.False(t, wp.Protected())

	level = true
	assert.True(t, wp.Protected())
}

func TestWriteProtectRequiresPin(t *testing.T) {
	_, err := NewWriteProtect(nil)
	assert.ErrorIs(t, err, fatfs.FileResultInvalidParameter)
}
