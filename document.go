package krc

import "github.com/simonhull/krc/internal/types"

// Document is an alias to types.Document.
// Re-exporting from internal/types to maintain public API.
type Document = types.Document

// TagMap is an alias to types.TagMap.
type TagMap = types.TagMap

// TimedLine is an alias to types.TimedLine.
type TimedLine = types.TimedLine

// TranslationTrack is an alias to types.TranslationTrack.
type TranslationTrack = types.TranslationTrack

// Re-export the well-known tag keys.
const (
	TagTitle    = types.TagTitle
	TagArtist   = types.TagArtist
	TagOffset   = types.TagOffset
	TagBy       = types.TagBy
	TagHash     = types.TagHash
	TagAlbum    = types.TagAlbum
	TagSign     = types.TagSign
	TagQQ       = types.TagQQ
	TagTotal    = types.TagTotal
	TagLanguage = types.TagLanguage
)
