package krc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/simonhull/krc/internal/types"
)

// translationPayload mirrors the JSON carried by the language tag:
//
//	{"content":[{"language":..,"type":..,"lyricContent":[["line", ...], ...]}]}
//
// Pointers distinguish a missing key from an empty value.
type translationPayload struct {
	Content *[]translationContent `json:"content"`
}

type translationContent struct {
	Language     *jsonText            `json:"language"`
	Type         *jsonText            `json:"type"`
	LyricContent *[][]json.RawMessage `json:"lyricContent"`
}

// jsonText accepts a JSON string or number. Kugou writes language and
// type as numeric codes; numbers keep their literal form ("0", "1").
type jsonText string

func (t *jsonText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = jsonText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = jsonText(n.String())
	return nil
}

// parseTranslations builds one track per content element. Only the first
// entry of every lyricContent row is used. Tracks without lines are
// dropped.
func parseTranslations(data []byte) ([]types.TranslationTrack, error) {
	var payload translationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, translationError(err)
	}
	if payload.Content == nil {
		return nil, translationError(errors.New(`missing "content"`))
	}

	var tracks []types.TranslationTrack
	for i, c := range *payload.Content {
		track, err := buildTrack(c)
		if err != nil {
			return nil, translationError(fmt.Errorf("content[%d]: %w", i, err))
		}
		if len(track.Lines) == 0 {
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func buildTrack(c translationContent) (types.TranslationTrack, error) {
	switch {
	case c.Language == nil:
		return types.TranslationTrack{}, errors.New(`missing "language"`)
	case c.Type == nil:
		return types.TranslationTrack{}, errors.New(`missing "type"`)
	case c.LyricContent == nil:
		return types.TranslationTrack{}, errors.New(`missing "lyricContent"`)
	}

	track := types.TranslationTrack{
		Language: string(*c.Language),
		Type:     string(*c.Type),
	}
	for j, row := range *c.LyricContent {
		if len(row) == 0 {
			return types.TranslationTrack{}, fmt.Errorf("lyricContent[%d] is empty", j)
		}
		var text jsonText
		if err := json.Unmarshal(row[0], &text); err != nil {
			return types.TranslationTrack{}, fmt.Errorf("lyricContent[%d][0]: %w", j, err)
		}
		track.Lines = append(track.Lines, types.TimedLine{
			Text:          string(text),
			Words:         []string{},
			WordDurations: []uint32{},
		})
	}
	return track, nil
}

func translationError(err error) error {
	return &types.CodecError{Kind: types.TranslationParseFailed, Err: err}
}
