// Package convert rewrites lyrics text between Chinese script variants
// for display.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/liuzl/gocc"

	"github.com/simonhull/krc/internal/types"
)

// TextConverter converts one string. Implementations return the input
// unchanged when conversion fails.
type TextConverter interface {
	Convert(text string) string
}

// Configs lists the OpenCC conversion names accepted by New.
var Configs = []string{"s2t", "t2s", "s2tw", "tw2s", "s2hk", "hk2s", "s2twp", "tw2sp", "t2tw", "t2hk"}

// ErrUnknownConfig is returned by New for a name not in Configs.
var ErrUnknownConfig = errors.New("unknown conversion config")

type openCCConverter struct {
	cc     *gocc.OpenCC
	name   string
	logger *slog.Logger
}

// New returns an OpenCC converter for the named configuration, e.g. "t2s"
// for Traditional to Simplified.
func New(name string, logger *slog.Logger) (TextConverter, error) {
	if !slices.Contains(Configs, name) {
		return nil, fmt.Errorf("%w %q", ErrUnknownConfig, name)
	}
	cc, err := gocc.New(name)
	if err != nil {
		return nil, fmt.Errorf("init OpenCC %q: %w", name, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &openCCConverter{cc: cc, name: name, logger: logger}, nil
}

func (c *openCCConverter) Convert(text string) string {
	out, err := c.cc.Convert(text)
	if err != nil {
		c.logger.Warn("conversion failed, keeping original text",
			slog.String("config", c.name), slog.Any("error", err))
		return text
	}
	return out
}

// Document returns a copy of doc with every line, word and translation
// converted. Tags are converted too, except the language payload.
func Document(c TextConverter, doc *types.Document) *types.Document {
	out := &types.Document{
		FileExt:      doc.FileExt,
		Tags:         types.NewTagMap(),
		Lines:        convertLines(c, doc.Lines),
		Translations: make([]types.TranslationTrack, 0, len(doc.Translations)),
		Warnings:     doc.Warnings,
	}
	for k, v := range doc.Tags.All() {
		if k != types.TagLanguage {
			v = c.Convert(v)
		}
		out.Tags.Set(k, v)
	}
	for _, tr := range doc.Translations {
		tr.Lines = convertLines(c, tr.Lines)
		out.Translations = append(out.Translations, tr)
	}
	return out
}

func convertLines(c TextConverter, lines []types.TimedLine) []types.TimedLine {
	if lines == nil {
		return nil
	}
	out := make([]types.TimedLine, len(lines))
	for i, l := range lines {
		l.Text = c.Convert(l.Text)
		words := make([]string, len(l.Words))
		for j, w := range l.Words {
			words[j] = c.Convert(w)
		}
		l.Words = words
		l.WordDurations = append([]uint32(nil), l.WordDurations...)
		out[i] = l
	}
	return out
}
