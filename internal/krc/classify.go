package krc

import (
	"regexp"
	"strings"
)

// lineKind is the branch a physical line is routed to.
type lineKind int

const (
	kindUnknown lineKind = iota
	kindTitle
	kindArtist
	kindOffset
	kindKnownTag   // by, hash, al, sign, qq, total, language
	kindTimed      // contains [start,duration]
	kindGenericTag // any other [key:value]
)

func (k lineKind) String() string {
	switch k {
	case kindTitle:
		return "title"
	case kindArtist:
		return "artist"
	case kindOffset:
		return "offset"
	case kindKnownTag:
		return "tag"
	case kindTimed:
		return "timed"
	case kindGenericTag:
		return "generic tag"
	default:
		return "unknown"
	}
}

const (
	prefixTitle  = "[ti:"
	prefixArtist = "[ar:"
	prefixOffset = "[offset:"
)

// knownTagPrefixes are captured by the generic key/value split.
var knownTagPrefixes = []string{
	"[by:",
	"[hash:",
	"[al:",
	"[sign:",
	"[qq:",
	"[total:",
	"[language:",
}

var (
	lineTimingPattern = regexp.MustCompile(`\[\d+,\d+\]`)
	genericTagPattern = regexp.MustCompile(`^\[[^\[\]:,]+:[^\]]*\]$`)
)

// splitLines splits decompressed text into physical lines. A trailing
// carriage return is removed so CRLF files classify like LF files.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// classify picks exactly one branch for line, in priority order.
func classify(line string) lineKind {
	switch {
	case line == "":
		return kindUnknown
	case strings.HasPrefix(line, prefixTitle):
		return kindTitle
	case strings.HasPrefix(line, prefixArtist):
		return kindArtist
	case strings.HasPrefix(line, prefixOffset):
		return kindOffset
	}

	for _, p := range knownTagPrefixes {
		if strings.HasPrefix(line, p) {
			return kindKnownTag
		}
	}

	if lineTimingPattern.MatchString(line) {
		return kindTimed
	}
	if genericTagPattern.MatchString(line) {
		return kindGenericTag
	}
	return kindUnknown
}
