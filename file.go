package krc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/krc/internal/binary"
	_ "github.com/simonhull/krc/internal/krc" // Register KRC decoder
	"github.com/simonhull/krc/internal/registry"
)

// ErrStrictParsing is returned by WithStrictParsing when a document has
// warnings.
var ErrStrictParsing = errors.New("strict parsing failed")

// Open reads and decodes a lyrics file.
//
// The format is detected from the header magic, falling back to the file
// extension. The whole file is read into memory; KRC files are small.
//
// A malformed line does not fail Open. It is skipped and reported in
// Document.Warnings. Only an unreadable file, an unsupported format or a
// body that cannot be inflated is an error.
//
// Example:
//
//	doc, err := krc.Open("song.krc")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", doc.Tags.Artist(), doc.Tags.Title())
func Open(path string, opts ...Option) (*Document, error) {
	return openFile(path, applyOptions(opts))
}

func openFile(path string, options *openOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return openReader(f, stat.Size(), path, options)
}

// openReader decodes from an io.ReaderAt (internal, for testing)
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*Document, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	data, err := binary.NewSafeReader(r, size, path).ReadAll("lyrics body")
	if err != nil {
		return nil, err
	}

	return decodeWith(format, data, path, options)
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is read. A single KRC decode is
// short and is not interrupted once started.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany decodes multiple files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines,
// or the limit set with WithConcurrency. Results are returned in the same
// order as the input paths.
//
// If any file fails, the remaining work is cancelled and the first error
// is returned without partial results.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	docs, err := krc.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, doc := range docs {
//		fmt.Printf("%s: %d lines\n", paths[i], len(doc.Lines))
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]*Document, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := openFile(path, options)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Decode reads all of r and decodes it as KRC.
//
// A nil reader yields an empty Document.
func Decode(r io.Reader, opts ...Option) (*Document, error) {
	if r == nil {
		return DecodeBytes(nil, opts...)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return DecodeBytes(data, opts...)
}

// DecodeBytes decodes a complete KRC file held in memory.
//
// The header is not validated. nil or empty data yields an empty
// Document.
func DecodeBytes(data []byte, opts ...Option) (*Document, error) {
	return decodeWith(FormatKRC, data, "", applyOptions(opts))
}

// DecodeBase64 decodes a base64-encoded KRC file, the form lyrics
// download APIs return. Surrounding whitespace is ignored.
func DecodeBase64(s string, opts ...Option) (*Document, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return DecodeBytes(data, opts...)
}

// Text returns the decompressed lyrics text without parsing it.
//
// Only WithCharset applies.
func Text(data []byte, opts ...Option) (string, error) {
	options := applyOptions(opts)

	dec, ok := registry.Get(FormatKRC).(registry.TextExtractor)
	if !ok {
		return "", &UnsupportedFormatError{Reason: "no text extractor available for format KRC"}
	}
	return dec.Text(data, options.decodeOptions("").Normalized())
}

func decodeWith(format Format, data []byte, path string, options *openOptions) (*Document, error) {
	dec := registry.Get(format)
	if dec == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no decoder available for format %s", format),
		}
	}

	doc, err := dec.Decode(data, options.decodeOptions(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	if options.ignoreWarnings {
		doc.Warnings = nil
	}

	if options.strictParsing && len(doc.Warnings) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrStrictParsing, doc.Warnings[0])
	}

	return doc, nil
}
