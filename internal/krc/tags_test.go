package krc

import (
	"errors"
	"testing"

	"github.com/simonhull/krc/internal/types"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
	}{
		{"title", "[ti:My Song]", "title", "My Song"},
		{"artist", "[ar:Some Band]", "artist", "Some Band"},
		{"offset", "[offset:-500]", "offset", "-500"},
		{"empty title", "[ti:]", "title", ""},
		{"title uses last bracket", "[ti:Song [Live]]", "title", "Song [Live]"},
		{"title trailing junk", "[ti:Song] extra", "title", "Song"},
		{"by", "[by:uploader]", "by", "uploader"},
		{"hash", "[hash:0123abcd]", "hash", "0123abcd"},
		{"album", "[al:Record]", "al", "Record"},
		{"empty sign", "[sign:]", "sign", ""},
		{"qq", "[qq:12345]", "qq", "12345"},
		{"total", "[total:215000]", "total", "215000"},
		{"value keeps colons", "[sign:a:b:c]", "sign", "a:b:c"},
		{"generic id", "[id:$00000000]", "id", "$00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := parseTag(classify(tt.line), tt.line)
			if err != nil {
				t.Fatalf("parseTag() error = %v", err)
			}
			if key != tt.wantKey || value != tt.wantValue {
				t.Errorf("parseTag(%q) = (%q, %q), want (%q, %q)", tt.line, key, value, tt.wantKey, tt.wantValue)
			}
		})
	}
}

func TestParseTag_NoColonValue(t *testing.T) {
	// A known prefix always has a colon, so exercise the split directly.
	key, value, err := parseTag(kindGenericTag, "[flag]")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if key != "flag" || value != "" {
		t.Errorf("parseTag() = (%q, %q), want (flag, \"\")", key, value)
	}
}

func TestParseTag_MissingBracket(t *testing.T) {
	for _, line := range []string{"[ti:Song", "[ar:Band", "[offset:10", "[by:someone"} {
		_, _, err := parseTag(classify(line), line)
		if !errors.Is(err, errNoClosingBracket) {
			t.Errorf("parseTag(%q) error = %v, want errNoClosingBracket", line, err)
		}
	}
}

func TestDecodeTranslationPayload(t *testing.T) {
	value := languageLine(`{"content":[{"language":"en","type":"1","lyricContent":[["Hello"],["World"]]}]}`)
	value = value[len("[language:") : len(value)-1]

	tracks, err := decodeTranslationPayload(value)
	if err != nil {
		t.Fatalf("decodeTranslationPayload() error = %v", err)
	}
	if len(tracks) != 1 || len(tracks[0].Lines) != 2 {
		t.Fatalf("tracks = %+v", tracks)
	}
}

func TestDecodeTranslationPayload_Unpadded(t *testing.T) {
	// {"content":[]} is 14 bytes, so the padded form ends in "=".
	tracks, err := decodeTranslationPayload("eyJjb250ZW50IjpbXX0")
	if err != nil {
		t.Fatalf("decodeTranslationPayload() error = %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("tracks = %+v, want none", tracks)
	}
}

func TestDecodeTranslationPayload_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not base64", "!!!"},
		{"not json", "bm90IGpzb24"},
		{"not utf8", "//79"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTranslationPayload(tt.value)
			if !errors.Is(err, types.ErrTranslationParseFailed) {
				t.Errorf("error = %v, want ErrTranslationParseFailed", err)
			}
		})
	}
}
