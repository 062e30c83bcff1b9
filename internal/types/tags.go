package types

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Well-known tag keys. The KRC prefixes "ti" and "ar" are stored under
// their long names; every other bracketed key is stored literally.
const (
	TagTitle    = "title"
	TagArtist   = "artist"
	TagOffset   = "offset"
	TagBy       = "by"
	TagHash     = "hash"
	TagAlbum    = "al"
	TagSign     = "sign"
	TagQQ       = "qq"
	TagTotal    = "total"
	TagLanguage = "language"
)

// TagMap holds the bracketed [key:value] metadata of a lyrics file.
//
// Keys are case-sensitive. When a file repeats a key the later value
// replaces the earlier one.
type TagMap struct {
	raw map[string]string
}

// NewTagMap returns an empty TagMap.
func NewTagMap() TagMap {
	return TagMap{raw: make(map[string]string)}
}

// Set stores value under key, replacing any previous value.
func (t *TagMap) Set(key, value string) {
	if t.raw == nil {
		t.raw = make(map[string]string)
	}
	t.raw[key] = value
}

// Get returns the value for key, or "" if the key is absent.
func (t TagMap) Get(key string) string {
	return t.raw[key]
}

// Lookup returns the value for key and whether it was present.
func (t TagMap) Lookup(key string) (string, bool) {
	v, ok := t.raw[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (t TagMap) Len() int {
	return len(t.raw)
}

// Keys returns all keys in sorted order.
func (t TagMap) Keys() []string {
	return slices.Sorted(maps.Keys(t.raw))
}

// All returns an iterator over all tags in sorted key order.
//
// Sorting keeps iteration deterministic, so two decodes of the same
// input print and compare identically.
//
//	for key, value := range doc.Tags.All() {
//		fmt.Printf("%s: %s\n", key, value)
//	}
func (t TagMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range t.Keys() {
			if !yield(key, t.raw[key]) {
				return
			}
		}
	}
}

// Title returns the "ti" tag.
func (t TagMap) Title() string { return t.Get(TagTitle) }

// Artist returns the "ar" tag.
func (t TagMap) Artist() string { return t.Get(TagArtist) }

// Album returns the "al" tag.
func (t TagMap) Album() string { return t.Get(TagAlbum) }

// Offset returns the "offset" tag in milliseconds.
//
// The second return value is false when the tag is missing or is not an
// integer. A leading "+" is accepted.
func (t TagMap) Offset() (int, bool) {
	v, ok := t.raw[TagOffset]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(v), "+"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// MarshalJSON encodes the tags as a JSON object.
func (t TagMap) MarshalJSON() ([]byte, error) {
	if t.raw == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t.raw)
}

// UnmarshalJSON decodes a JSON object of string values.
func (t *TagMap) UnmarshalJSON(data []byte) error {
	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.raw = raw
	return nil
}
