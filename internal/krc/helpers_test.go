package krc

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"testing"
)

// encodeKRC builds a KRC file from plain text: header, zlib, XOR mask.
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

	return append([]byte("krc1"), Deobfuscate(z.Bytes())...)
}

// languageLine wraps a translation JSON document in a language tag.
func languageLine(json string) string {
	return "[language:" + base64.StdEncoding.EncodeToString([]byte(json)) + "]"
}
