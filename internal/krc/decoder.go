// Package krc decodes Kugou KRC karaoke lyrics.
//
// A KRC file is a 4-byte header followed by a zlib stream that has been
// masked with a repeating 16-byte XOR key. The inflated text holds
// [key:value] tag lines and karaoke lines of the form
//
//	[start,duration]<offset,duration,flag>word<offset,duration,flag>word
//
// The language tag may carry base64 JSON with translation tracks.
package krc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/simonhull/krc/internal/registry"
	"github.com/simonhull/krc/internal/types"
)

// decoder implements registry.Decoder and registry.TextExtractor.
type decoder struct{}

// Decode decodes a complete KRC file held in memory.
//
// nil or empty data, or data holding only the header, yields an empty
// document. A body that does not inflate is the only fatal error.
func (d *decoder) Decode(data []byte, opts types.DecodeOptions) (*types.Document, error) {
	opts = opts.Normalized()

	text, err := d.Text(data, opts)
	if err != nil {
		return nil, err
	}

	doc := decodeText(text, opts.Logger)
	opts.Logger.Debug("decoded krc",
		slog.String("path", opts.Path),
		slog.Int("lines", len(doc.Lines)),
		slog.Int("tags", doc.Tags.Len()),
		slog.Int("translations", len(doc.Translations)),
		slog.Int("warnings", len(doc.Warnings)),
	)
	return doc, nil
}

// Text strips the header, removes the XOR mask and inflates the body.
func (d *decoder) Text(data []byte, opts types.DecodeOptions) (string, error) {
	body := data[min(types.HeaderSize, len(data)):]

	text, err := Inflate(Deobfuscate(body), opts.Charset)
	if err != nil {
		var ce *types.CodecError
		if errors.As(err, &ce) && ce.Path == "" {
			ce.Path = opts.Path
		}
		return "", err
	}
	return text, nil
}

// accumulator collects the results of the per-line parsers. It is owned
// by a single decodeText call.
type accumulator struct {
	doc    *types.Document
	logger *slog.Logger
}

func (a *accumulator) warn(stage string, line int, err error) {
	a.doc.Warnings = append(a.doc.Warnings, types.Warning{
		Stage:   stage,
		Message: err.Error(),
		Line:    line,
	})
}

// decodeText classifies every line and routes it to the tag or timed-line
// parser. A failing line is recorded as a warning and skipped.
func decodeText(text string, logger *slog.Logger) *types.Document {
	acc := &accumulator{
		doc: &types.Document{
			FileExt:      types.FormatKRC.Ext(),
			Tags:         types.NewTagMap(),
			Lines:        []types.TimedLine{},
			Translations: []types.TranslationTrack{},
		},
		logger: logger,
	}

	for i, line := range splitLines(text) {
		n := i + 1
		switch kind := classify(line); kind {
		case kindTitle, kindArtist, kindOffset, kindKnownTag, kindGenericTag:
			acc.addTag(kind, n, line)
		case kindTimed:
			acc.addTimedLine(n, line)
		default:
			// unknown lines are ignored
		}
	}

	return acc.doc
}

func (a *accumulator) addTag(kind lineKind, n int, line string) {
	key, value, err := parseTag(kind, line)
	if err != nil {
		lerr := &types.LineParseError{Line: n, Text: line, Reason: fmt.Sprintf("invalid %s line", kind), Err: err}
		a.logger.Debug("skipping tag line", slog.Int("line", n), slog.Any("error", err))
		a.warn("tag", n, lerr)
		return
	}
	a.doc.Tags.Set(key, value)

	if key != types.TagLanguage || value == "" {
		return
	}
	tracks, err := decodeTranslationPayload(value)
	if err != nil {
		a.logger.Warn("ignoring translations", slog.Int("line", n), slog.Any("error", err))
		a.warn("translation", n, err)
		return
	}
	if len(tracks) > 0 {
		a.doc.Translations = tracks
	}
}

func (a *accumulator) addTimedLine(n int, line string) {
	tl, ok, err := parseTimedLine(line)
	if err != nil {
		lerr := &types.LineParseError{Line: n, Text: line, Reason: "invalid timed line", Err: err}
		a.logger.Debug("skipping timed line", slog.Int("line", n), slog.Any("error", err))
		a.warn("line", n, lerr)
		return
	}
	if !ok {
		return
	}
	a.doc.Lines = append(a.doc.Lines, tl)
}

func init() {
	registry.Register(types.FormatKRC, &decoder{})
}
