package krc

import (
	"log/slog"
	"runtime"

	"golang.org/x/text/encoding"

	"github.com/simonhull/krc/internal/types"
)

// Option configures behavior when decoding lyrics.
//
// Example:
//
//	doc, err := krc.Open("song.krc",
//	    krc.WithStrictParsing(),
//	    krc.WithLogger(slog.Default()),
//	)
type Option func(*openOptions)

// openOptions holds configuration for decoding.
type openOptions struct {
	strictParsing  bool              // Fail on any warning
	ignoreWarnings bool              // Suppress all warnings
	logger         *slog.Logger      // nil = silent
	charset        encoding.Encoding // nil = UTF-8
	concurrency    int               // OpenMany worker limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *openOptions) decodeOptions(path string) types.DecodeOptions {
	return types.DecodeOptions{
		Logger:  o.logger,
		Charset: o.charset,
		Path:    path,
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default a malformed line is skipped and a broken translation payload
// is ignored, with a Warning recorded for each. With strict parsing the
// first warning is returned as an error instead.
//
// Example:
//
//	doc, err := krc.Open("song.krc", krc.WithStrictParsing())
//	// err != nil if ANY line was skipped
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Document.Warnings will always be empty. This takes precedence over
// WithStrictParsing.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sets the logger that receives decode diagnostics.
//
// Skipped lines are logged at Debug, dropped translations at Warn.
// A nil logger keeps the library silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithCharset sets the encoding of the decompressed text.
//
// KRC text is UTF-8 in practice; files converted by third-party tools are
// sometimes GBK:
//
//	doc, err := krc.Open(path, krc.WithCharset(simplifiedchinese.GBK))
func WithCharset(enc encoding.Encoding) Option {
	return func(o *openOptions) {
		o.charset = enc
	}
}

// WithConcurrency limits the number of files OpenMany decodes at once.
//
// Default is runtime.NumCPU(). Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *openOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
