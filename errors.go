package krc

import (
	"github.com/simonhull/krc/internal/types"
)

// Sentinels for errors.Is.
var (
	ErrDecompressionFailed    = types.ErrDecompressionFailed
	ErrTranslationParseFailed = types.ErrTranslationParseFailed
)

// CodecError is an alias to types.CodecError.
// Re-exporting from internal/types to maintain public API.
type CodecError = types.CodecError

// CodecErrorKind is an alias to types.CodecErrorKind.
type CodecErrorKind = types.CodecErrorKind

// Re-export the codec error kinds.
const (
	DecompressionFailed    = types.DecompressionFailed
	TranslationParseFailed = types.TranslationParseFailed
)

// LineParseError is an alias to types.LineParseError.
type LineParseError = types.LineParseError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// Warning is an alias to types.Warning.
type Warning = types.Warning
