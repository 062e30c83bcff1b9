package krc

import "iter"

// tokenKind identifies a token of the karaoke timing grammar:
//
//	"[" start "," duration "]" ( "<" offset "," duration "," flag ">" word )*
type tokenKind int

const (
	tokenText       tokenKind = iota // plain text run
	tokenLineTiming                  // [start,duration]
	tokenWordTiming                  // <offset,duration,flag>
	tokenTruncated                   // "<" digits/commas cut off by end of line
	tokenMalformed                   // "<" digits/commas broken by another byte
)

func (k tokenKind) String() string {
	switch k {
	case tokenText:
		return "text"
	case tokenLineTiming:
		return "line timing"
	case tokenWordTiming:
		return "word timing"
	case tokenTruncated:
		return "truncated word timing"
	case tokenMalformed:
		return "malformed word timing"
	default:
		return "unknown"
	}
}

type token struct {
	raw    string
	fields []string // digit fields of a timing token
	kind   tokenKind
	pos    int // byte offset in the line
}

// tokenize returns a lazy token stream for line. The sequence is finite
// and may be ranged over any number of times.
//
// Only the first [start,duration] group is a line-timing token; text
// before it and any later bracket groups are plain text. A "<" that does
// not open a complete word timing is plain text, except when the partial
// timing runs to the end of the line or is broken by an unexpected byte.
// Those yield a single truncated or malformed token that ends the stream.
func tokenize(line string) iter.Seq[token] {
	return func(yield func(token) bool) {
		pos := 0
		seenLineTiming := false
		runStart := 0

		flush := func(end int) bool {
			if end > runStart {
				if !yield(token{kind: tokenText, raw: line[runStart:end], pos: runStart}) {
					return false
				}
			}
			return true
		}

		for pos < len(line) {
			switch {
			case !seenLineTiming && line[pos] == '[':
				end, fields, st := scanTiming(line, pos, '[', ']', 2)
				if st != scanMatch {
					pos++
					continue
				}
				if !flush(pos) {
					return
				}
				if !yield(token{kind: tokenLineTiming, raw: line[pos:end], fields: fields, pos: pos}) {
					return
				}
				seenLineTiming = true
				pos, runStart = end, end

			case seenLineTiming && line[pos] == '<':
				end, fields, st := scanTiming(line, pos, '<', '>', 3)
				switch st {
				case scanMatch:
					if !flush(pos) {
						return
					}
					if !yield(token{kind: tokenWordTiming, raw: line[pos:end], fields: fields, pos: pos}) {
						return
					}
					pos, runStart = end, end
				case scanTruncated:
					if !flush(pos) {
						return
					}
					yield(token{kind: tokenTruncated, raw: line[pos:], pos: pos})
					return
				case scanMalformed:
					if !flush(pos) {
						return
					}
					yield(token{kind: tokenMalformed, raw: line[pos:end], pos: pos})
					return
				default:
					pos++
				}

			default:
				pos++
			}
		}
		flush(len(line))
	}
}

type scanStatus int

const (
	scanNoMatch scanStatus = iota
	scanMatch
	scanTruncated
	scanMalformed
)

// scanTiming matches open digits ("," digits){n-1} close at line[pos].
//
// An open bracket not followed by a digit is scanNoMatch. Once a digit
// has been seen the group must complete: scanTruncated means the line
// ended first, scanMalformed means another byte broke it, with end at
// that byte.
func scanTiming(line string, pos int, open, close byte, n int) (int, []string, scanStatus) {
	if line[pos] != open {
		return 0, nil, scanNoMatch
	}
	i := pos + 1
	fields := make([]string, 0, n)
	for f := 0; f < n; f++ {
		start := i
		for i < len(line) && isDigit(line[i]) {
			i++
		}
		if i == len(line) {
			if f == 0 && i == start {
				// a bare trailing open bracket is text
				return 0, nil, scanNoMatch
			}
			return 0, nil, scanTruncated
		}
		if i == start {
			if f == 0 {
				return 0, nil, scanNoMatch
			}
			return i, nil, scanMalformed
		}
		fields = append(fields, line[start:i])

		want := byte(',')
		if f == n-1 {
			want = close
		}
		if line[i] != want {
			return i, nil, scanMalformed
		}
		i++
		if f < n-1 && i == len(line) {
			return 0, nil, scanTruncated
		}
	}
	return i, fields, scanMatch
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
