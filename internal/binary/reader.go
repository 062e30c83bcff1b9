// Package binary provides bounds-checked reading of lyrics files held
// behind an io.ReaderAt.
package binary

import (
	"fmt"
	"io"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the total number of bytes behind the reader.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	// Check bounds
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// ReadRest reads every byte from off to the end of the reader.
//
// The length comes from the size the reader was created with, never from
// a buffered-bytes hint. Reading at or past the end yields an empty slice.
func (sr *SafeReader) ReadRest(off int64, what string) ([]byte, error) {
	if off < 0 {
		return nil, fmt.Errorf("%s: negative offset %d while reading %s", sr.path, off, what)
	}
	if off >= sr.size {
		return []byte{}, nil
	}

	buf := make([]byte, sr.size-off)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadAll reads the whole content.
func (sr *SafeReader) ReadAll(what string) ([]byte, error) {
	return sr.ReadRest(0, what)
}
