package binary

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// shortReader claims more bytes than it serves.
type shortReader struct{}

func (shortReader) ReadAt(p []byte, off int64) (int, error) {
	return 0, nil
}

type failingReader struct{}

func (failingReader) ReadAt(p []byte, off int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.krc")

	buf := make([]byte, 2)
	err := sr.ReadAt(buf, 0, "test read")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("expected [0x01, 0x02], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.krc")

	buf := make([]byte, 2)
	err := sr.ReadAt(buf, 10, "out of bounds read")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Check error message contains useful info
	errMsg := err.Error()
	if !strings.Contains(errMsg, "test.krc") {
		t.Errorf("error should contain filename: %v", errMsg)
	}
	if !strings.Contains(errMsg, "out of bounds read") {
		t.Errorf("error should contain context: %v", errMsg)
	}
}

func TestSafeReader_ReadAt_ExceedsSize(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.krc")

	err := sr.ReadAt(make([]byte, 3), 2, "header")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "would exceed file size 4") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestSafeReader_ReadAt_ShortRead(t *testing.T) {
	sr := NewSafeReader(shortReader{}, 10, "test.krc")

	err := sr.ReadAt(make([]byte, 4), 0, "magic")
	if err == nil || !strings.Contains(err.Error(), "short read") {
		t.Errorf("expected short read error, got %v", err)
	}
}

func TestSafeReader_ReadAt_UnderlyingError(t *testing.T) {
	sr := NewSafeReader(failingReader{}, 10, "test.krc")

	err := sr.ReadAt(make([]byte, 4), 0, "magic")
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestSafeReader_ReadRest(t *testing.T) {
	data := []byte("krc1body-bytes")
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.krc")

	tests := []struct {
		name string
		off  int64
		want string
	}{
		{"after header", 4, "body-bytes"},
		{"from start", 0, "krc1body-bytes"},
		{"at end", int64(len(data)), ""},
		{"past end", 100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sr.ReadRest(tt.off, "body")
			if err != nil {
				t.Fatalf("ReadRest() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadRest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafeReader_ReadRest_Negative(t *testing.T) {
	sr := NewSafeReader(bytes.NewReader(nil), 0, "test.krc")
	if _, err := sr.ReadRest(-1, "body"); err == nil {
		t.Error("expected error for negative offset")
	}
}

func TestSafeReader_ReadAll(t *testing.T) {
	data := []byte{9, 8, 7}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.krc")

	got, err := sr.ReadAll("file")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadAll() = %v, want %v", got, data)
	}
	if sr.Size() != 3 || sr.Path() != "test.krc" {
		t.Errorf("Size()/Path() = %d/%q", sr.Size(), sr.Path())
	}
}
