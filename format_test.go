package krc

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		path    string
		want    Format
		wantErr bool
	}{
		{"magic", []byte("krc1\x00\x01"), "lyrics.bin", FormatKRC, false},
		{"magic without extension", []byte("krc1"), "", FormatKRC, false},
		{"extension", []byte("????body"), "song.KRC", FormatKRC, false},
		{"short file with extension", []byte("k"), "song.krc", FormatKRC, false},
		{"unknown", []byte("[ti:x]\n"), "song.lrc", FormatUnknown, true},
		{"short unknown", []byte("kr"), "song", FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
			var ufe *UnsupportedFormatError
			if tt.wantErr && !errors.As(err, &ufe) {
				t.Errorf("error = %T, want *UnsupportedFormatError", err)
			}
		})
	}
}

func TestOpenReader_NoDecoder(t *testing.T) {
	_, err := decodeWith(FormatUnknown, nil, "x", defaultOptions())
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Errorf("error = %v, want *UnsupportedFormatError", err)
	}
}

func TestOpenReader(t *testing.T) {
	data := []byte("krc1")

	doc, err := openReader(bytes.NewReader(data), int64(len(data)), "empty.krc", defaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Empty() || doc.FileExt != "krc" {
		t.Errorf("document = %+v", doc)
	}
}

func TestWithConcurrency(t *testing.T) {
	o := applyOptions([]Option{WithConcurrency(3)})
	if o.concurrency != 3 {
		t.Errorf("concurrency = %d, want 3", o.concurrency)
	}
	o = applyOptions([]Option{WithConcurrency(0)})
	if o.concurrency < 1 {
		t.Errorf("concurrency = %d, want default", o.concurrency)
	}
}
