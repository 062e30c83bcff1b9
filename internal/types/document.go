// Package types provides core data structures for decoded lyrics.
//
// This package defines the Document, TagMap, TimedLine and
// TranslationTrack types shared by the public API and the format
// decoders.
package types

import "time"

// Document is a fully decoded lyrics file.
//
// A Document is built once by a single decode pass and is not modified
// by the library afterwards. Lines are indexed densely from zero in the
// order they appeared in the source; any index embedded in the file is
// ignored.
type Document struct {
	// File extension of the source format, e.g. "krc"
	FileExt string `json:"fileExt"`

	// Bracketed [key:value] metadata
	Tags TagMap `json:"tags"`

	// Karaoke lines in source order
	Lines []TimedLine `json:"lines"`

	// Parallel translation tracks (text only)
	Translations []TranslationTrack `json:"translations"`

	// Non-fatal issues encountered while decoding
	Warnings []Warning `json:"warnings,omitempty"`
}

// Empty reports whether the document carries no tags, lines or translations.
func (d *Document) Empty() bool {
	return d.Tags.Len() == 0 && len(d.Lines) == 0 && len(d.Translations) == 0
}

// Duration returns the end time of the last line.
func (d *Document) Duration() time.Duration {
	var end uint32
	for _, l := range d.Lines {
		end = max(end, l.EndTime)
	}
	return time.Duration(end) * time.Millisecond
}

// TimedLine is one lyrics line with its timing.
//
// For karaoke lines Words and WordDurations have the same length and
// Text is the words joined as authored. Translation lines carry only
// Text.
type TimedLine struct {
	Text          string   `json:"text"`
	Words         []string `json:"words"`
	WordDurations []uint32 `json:"wordDurations"`
	StartTime     uint32   `json:"startTime"` // ms
	EndTime       uint32   `json:"endTime"`   // ms
	Karaoke       bool     `json:"karaoke"`
}

// Duration returns EndTime - StartTime.
func (l TimedLine) Duration() time.Duration {
	return time.Duration(l.EndTime-l.StartTime) * time.Millisecond
}

// TranslationTrack is a parallel set of lines in another language.
type TranslationTrack struct {
	Language string      `json:"language"`
	Type     string      `json:"type"`
	Lines    []TimedLine `json:"lines"`
}
