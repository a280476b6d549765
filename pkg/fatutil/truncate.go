// Package fatutil provides small conveniences on top of a mounted FAT
// volume: reporting total and free space, truncating bytes off the front
// of a file, and reading card-detect / write-protect signals.
package fatutil

import (
	"io"

	"github.com/OffBroadway/fatutil/pkg/fatfs"
)

// TruncateBufferSize is the staging buffer capacity used by TruncateFront.
// Hosts that front-truncate large files often should call
// TruncateFrontBuffer with a bigger buffer instead; a larger buffer means
// fewer seek round-trips.
const TruncateBufferSize = 256

// TruncateFront removes the first index bytes of an open file by sliding
// the remaining content down to offset 0 and shortening the file.
//
// A file containing "abcdefghijklmnoprstuvwxyz" truncated with index 5
// ends up containing "fghijklmnoprstuvwxyz". If index is at or beyond the
// current size the file is emptied but not deleted.
//
// The file must be open for both reading and writing, and stays open:
// closing it remains the caller's job. The operation is not atomic; if an
// I/O call fails partway through, the file is left in the partially
// shifted state the completed calls produced, and the first failure is
// returned as-is.
func TruncateFront(f fatfs.File, index int64) error {
	var buf [TruncateBufferSize]byte
	return TruncateFrontBuffer(f, index, buf[:])
}

// TruncateFrontBuffer is TruncateFront with a caller-supplied staging
// buffer. Memory use is bounded by len(buf) no matter how large the file
// is; the result does not depend on the buffer size.
func TruncateFrontBuffer(f fatfs.File, index int64, buf []byte) error {
	if index < 0 || len(buf) == 0 {
		return fatfs.FileResultInvalidParameter
	}
	size, err := f.Size()
	if err != nil {
		return err
	}
	if index >= size {
		// Nothing survives. Empty the file rather than deleting it.
		if err := f.Seek(0); err != nil {
			return err
		}
		return f.Truncate()
	}
	if index == 0 {
		return nil // nothing to remove
	}

	// Slide the tail [index, size) down to offset 0 chunk by chunk. The
	// write offset always trails the read offset, so no chunk can clobber
	// bytes that have not been read yet.
	readPos, writePos := index, int64(0)
	for {
		chunk := buf
		if remaining := size - readPos; remaining < int64(len(chunk)) {
			chunk = chunk[:remaining]
		}
		if len(chunk) == 0 {
			break
		}
		if err := f.Seek(readPos); err != nil {
			return err
		}
		n, err := f.Read(chunk)
		if err != nil && err != io.EOF {
			return err
		}
		if n == 0 {
			break // tail fully copied
		}
		readPos += int64(n)
		if err := f.Seek(writePos); err != nil {
			return err
		}
		if _, err := f.Write(chunk[:n]); err != nil {
			return err
		}
		writePos += int64(n)
	}

	// writePos == size - index; everything past it is stale tail.
	if err := f.Seek(writePos); err != nil {
		return err
	}
	return f.Truncate()
}
