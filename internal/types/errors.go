package types

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against a *CodecError.
var (
	// ErrDecompressionFailed matches any decompression failure.
	ErrDecompressionFailed = errors.New("decompression failed")
	// ErrTranslationParseFailed matches any embedded translation failure.
	ErrTranslationParseFailed = errors.New("translation parse failed")
)

// CodecErrorKind classifies a CodecError.
type CodecErrorKind int

const (
	// DecompressionFailed means the body was not a valid zlib stream.
	// It is fatal for the whole decode.
	DecompressionFailed CodecErrorKind = iota + 1
	// TranslationParseFailed means the language tag payload could not be
	// decoded. It is recovered at the tag boundary.
	TranslationParseFailed
)

func (k CodecErrorKind) String() string {
	switch k {
	case DecompressionFailed:
		return "decompression failed"
	case TranslationParseFailed:
		return "translation parse failed"
	default:
		return "codec error"
	}
}

// CodecError is returned when one of the codec stages fails.
type CodecError struct {
	Err  error
	Path string
	Kind CodecErrorKind
}

func (e *CodecError) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *CodecError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case DecompressionFailed:
		sentinel = ErrDecompressionFailed
	case TranslationParseFailed:
		sentinel = ErrTranslationParseFailed
	}
	errs := make([]error, 0, 2)
	if sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// LineParseError describes a single lyrics line that could not be parsed.
// The line is dropped; decoding continues with the next one.
type LineParseError struct {
	Err    error
	Text   string
	Reason string
	Line   int // 1-based physical line number
}

func (e *LineParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *LineParseError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when the file is not a KRC file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings indicate problems that don't prevent the document from being
// built but may indicate corrupted or unusual data. Examples include:
//   - A timed line with a truncated word timing
//   - A tag line without a closing bracket
//   - An undecodable translation payload
//
// Warnings are collected in Document.Warnings during decoding.
type Warning struct {
	// Stage where the warning occurred
	Stage string `json:"stage"` // "line", "tag", "translation"

	// Warning message
	Message string `json:"message"`

	// 1-based physical line number (0 if not applicable)
	Line int `json:"line,omitempty"`
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (at line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
