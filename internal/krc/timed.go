package krc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/krc/internal/types"
)

var (
	errTruncatedWordTiming = errors.New("truncated word timing")
	errMalformedWordTiming = errors.New("malformed word timing")
)

// parser states
const (
	stateHeader  = iota // before [start,duration]
	stateLeading        // after the line timing, before the first word
	stateWord           // inside a word
)

// parseTimedLine parses one karaoke line.
//
// ok is false when the line carries no [start,duration] group; that is
// not an error. A non-nil error means the line is malformed and must be
// dropped.
func parseTimedLine(line string) (tl types.TimedLine, ok bool, err error) {
	var (
		state int
		text  strings.Builder
		word  strings.Builder
	)
	tl.Words = []string{}
	tl.WordDurations = []uint32{}

	closeWord := func() {
		if state == stateWord {
			tl.Words = append(tl.Words, word.String())
			word.Reset()
		}
	}

	for tok := range tokenize(line) {
		switch tok.kind {
		case tokenLineTiming:
			start, err := parseMillis(tok.fields[0])
			if err != nil {
				return types.TimedLine{}, false, fmt.Errorf("line start %q: %w", tok.fields[0], err)
			}
			dur, err := parseMillis(tok.fields[1])
			if err != nil {
				return types.TimedLine{}, false, fmt.Errorf("line duration %q: %w", tok.fields[1], err)
			}
			if uint64(start)+uint64(dur) > math.MaxUint32 {
				return types.TimedLine{}, false, fmt.Errorf("line end %d+%d overflows", start, dur)
			}
			tl.StartTime = start
			tl.EndTime = start + dur
			state = stateLeading

		case tokenWordTiming:
			// offset and flag are validated but not kept
			if _, err := parseMillis(tok.fields[0]); err != nil {
				return types.TimedLine{}, false, fmt.Errorf("word offset %q: %w", tok.fields[0], err)
			}
			dur, err := parseMillis(tok.fields[1])
			if err != nil {
				return types.TimedLine{}, false, fmt.Errorf("word duration %q: %w", tok.fields[1], err)
			}
			if _, err := parseMillis(tok.fields[2]); err != nil {
				return types.TimedLine{}, false, fmt.Errorf("word flag %q: %w", tok.fields[2], err)
			}
			closeWord()
			tl.WordDurations = append(tl.WordDurations, dur)
			state = stateWord

		case tokenTruncated:
			return types.TimedLine{}, false, fmt.Errorf("%w at byte %d: %q", errTruncatedWordTiming, tok.pos, tok.raw)

		case tokenMalformed:
			return types.TimedLine{}, false, fmt.Errorf("%w at byte %d: %q", errMalformedWordTiming, tok.pos, tok.raw)

		case tokenText:
			switch state {
			case stateHeader:
				// text before the line timing is ignored
			case stateLeading:
				text.WriteString(tok.raw)
			case stateWord:
				text.WriteString(tok.raw)
				word.WriteString(tok.raw)
			}
		}
	}

	if state == stateHeader {
		return types.TimedLine{}, false, nil
	}
	closeWord()

	tl.Text = text.String()
	tl.Karaoke = true
	return tl, true, nil
}

func parseMillis(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
