package krc

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/krc/internal/types"
)

var errNoClosingBracket = errors.New("missing closing ']'")

// parseTag extracts the key and value of a tag line.
//
// For ti/ar/offset the value runs from the prefix to the last ']' on the
// line, so a ']' inside the value is kept as long as the line ends with
// one. Other tags are split once on the first ':' between the first '['
// and the last ']'; later colons stay in the value.
func parseTag(kind lineKind, line string) (key, value string, err error) {
	end := strings.LastIndexByte(line, ']')

	switch kind {
	case kindTitle:
		return extractPrefixed(line, prefixTitle, end, types.TagTitle)
	case kindArtist:
		return extractPrefixed(line, prefixArtist, end, types.TagArtist)
	case kindOffset:
		return extractPrefixed(line, prefixOffset, end, types.TagOffset)
	}

	start := strings.IndexByte(line, '[') + 1
	if end < start {
		return "", "", errNoClosingBracket
	}
	key, value, _ = strings.Cut(line[start:end], ":")
	return key, value, nil
}

func extractPrefixed(line, prefix string, end int, key string) (string, string, error) {
	if end < len(prefix) {
		return "", "", errNoClosingBracket
	}
	return key, line[len(prefix):end], nil
}

// decodeTranslationPayload turns the base64 value of a language tag into
// translation tracks.
func decodeTranslationPayload(value string) ([]types.TranslationTrack, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		// Some producers strip the padding.
		var rawErr error
		raw, rawErr = base64.RawStdEncoding.DecodeString(strings.TrimRight(value, "="))
		if rawErr != nil {
			return nil, &types.CodecError{Kind: types.TranslationParseFailed, Err: err}
		}
	}
	if !utf8.Valid(raw) {
		return nil, &types.CodecError{
			Kind: types.TranslationParseFailed,
			Err:  errors.New("payload is not valid UTF-8"),
		}
	}
	return parseTranslations(raw)
}
