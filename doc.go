// Package krc decodes Kugou KRC karaoke lyrics files.
//
// A KRC file carries per-word timed lyrics, bracketed metadata tags and,
// optionally, parallel translation tracks. The bytes on disk are a short
// header followed by a zlib stream masked with a fixed XOR key; krc
// removes the mask, inflates the text and parses it into a Document.
//
// # Quick Start
//
//	doc, err := krc.Open("song.krc")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s\n", doc.Tags.Artist(), doc.Tags.Title())
//	for _, line := range doc.Lines {
//		fmt.Printf("%6d %s\n", line.StartTime, line.Text)
//	}
//
// Data that is already in memory, for example a lyrics API response, can
// be decoded directly:
//
//	doc, err := krc.DecodeBytes(data)
//	doc, err := krc.DecodeBase64(resp.Content)
//
// # Document Model
//
//	[Document]
//	  ├─ [TagMap]            - [key:value] metadata (title, artist, offset, ...)
//	  ├─ [TimedLine]         - karaoke lines with per-word durations
//	  └─ [TranslationTrack]  - text-only lines in other languages
//
// Lines are kept in source order. Every karaoke line has as many Words as
// WordDurations, and its Text is the words joined as authored.
//
// # Error Handling
//
// Decoding is tolerant. Only a body that cannot be inflated fails the
// whole call, with an error matching ErrDecompressionFailed:
//
//	doc, err := krc.Open(path)
//	if errors.Is(err, krc.ErrDecompressionFailed) {
//		// not a KRC body, or corrupted
//	}
//
// A malformed line is dropped and reported in Document.Warnings; a broken
// translation payload leaves the document without translations and is
// reported the same way. Use WithStrictParsing to turn any warning into
// an error, or WithIgnoreWarnings to discard them.
//
// nil or empty input is not an error; it yields an empty Document.
//
// # Concurrency
//
// Each decode is independent and holds no shared mutable state, so any
// number may run at once. OpenMany decodes a batch of files in parallel:
//
//	docs, err := krc.OpenMany(ctx, paths, krc.WithConcurrency(4))
//
// # Logging
//
// The library is silent by default. Pass a *slog.Logger with WithLogger
// to see skipped lines (Debug) and dropped translations (Warn).
package krc
