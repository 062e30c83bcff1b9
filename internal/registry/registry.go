// Package registry manages format-specific decoders for lyrics file types.
package registry

import (
	"sync"

	"github.com/simonhull/krc/internal/types"
)

// Decoder is the interface all format decoders implement.
type Decoder interface {
	// Decode turns a complete, in-memory lyrics file into a Document.
	// Non-fatal problems are reported in Document.Warnings.
	Decode(data []byte, opts types.DecodeOptions) (*types.Document, error)
}

// TextExtractor is an optional interface for decoders that can expose the
// decoded plain text before it is parsed.
type TextExtractor interface {
	Text(data []byte, opts types.DecodeOptions) (string, error)
}

var (
	mu       sync.RWMutex
	decoders = make(map[types.Format]Decoder)
)

// Register registers a decoder for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, decoder Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[format] = decoder
}

// Get returns the decoder for a given format.
// Returns nil if no decoder is registered for the format.
func Get(format types.Format) Decoder {
	mu.RLock()
	defer mu.RUnlock()
	return decoders[format]
}
