package types

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

// DecodeOptions carries the settings a format decoder needs.
type DecodeOptions struct {
	// Logger receives per-line diagnostics. Never nil once normalized.
	Logger *slog.Logger

	// Charset of the decompressed text. nil means UTF-8 (BOM stripped).
	Charset encoding.Encoding

	// Path is used only for error messages.
	Path string
}

// Normalized returns a copy with nil fields replaced by defaults.
func (o DecodeOptions) Normalized() DecodeOptions {
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
