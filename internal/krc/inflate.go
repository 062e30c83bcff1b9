package krc

import (
	"bytes"
	"compress/zlib"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/simonhull/krc/internal/types"
)

// defaultCharset decodes UTF-8 and drops a leading byte order mark, which
// most KRC producers emit.
var defaultCharset encoding.Encoding = unicode.UTF8BOM

// Inflate decompresses a deobfuscated body and decodes it to a UTF-8 string.
//
// An empty body yields "" and no error. Anything that is not a complete
// zlib stream fails with a DecompressionFailed CodecError.
func Inflate(data []byte, charset encoding.Encoding) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if charset == nil {
		charset = defaultCharset
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", &types.CodecError{Kind: types.DecompressionFailed, Err: err}
	}
	defer zr.Close()

	text, err := io.ReadAll(transform.NewReader(zr, charset.NewDecoder()))
	if err != nil {
		return "", &types.CodecError{Kind: types.DecompressionFailed, Err: err}
	}

	return string(text), nil
}
