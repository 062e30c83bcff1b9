package krc_test

import (
	"bytes"
	"compress/zlib"
	"os"
	"path/filepath"
	"testing"

	codec "github.com/simonhull/krc/internal/krc"
)

const sampleLyrics = "[ar:Artist]\n" +
	"[ti:My Song]\n" +
	"[al:Album]\n" +
	"[offset:-500]\n" +
	"[1000,2000]<0,500,0>Hel<500,500,0>lo\n" +
	"[3000,1000]<0,400,0>wor<400,600,0>ld\n"

// encodeKRC builds KRC bytes from plain text.
func encodeKRC(tb testing.TB, text string) []byte {
	tb.Helper()

	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	if _, err := zw.Write([]byte(text)); err != nil {
		tb.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		tb.Fatal(err)
	}
	return append([]byte("krc1"), codec.Deobfuscate(z.Bytes())...)
}

// writeKRC writes an encoded KRC file into a temp dir and returns its path.
func writeKRC(tb testing.TB, name, text string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, encodeKRC(tb, text), 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
