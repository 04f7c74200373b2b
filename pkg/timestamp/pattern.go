package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	errEmptyPattern      = errors.New("empty pattern")
	errUnterminatedQuote = errors.New("unterminated quote")
)

// segment is one piece of a compiled date template: literal text, a Go layout
// fragment, or a number Go layouts cannot express. Keeping literals apart from
// layouts stops digits and words in quoted text from being read as Go
// reference-time tokens.
type segment struct {
	literal  string
	layout   string
	fraction bool // layout is ".000…"; the leading dot is dropped on output.
	number   rune // 'k', 'K' or 'D', zero padded to width.
	width    int
}

// compilePattern translates a date template in the usual "HH:mm:ss" token
// style into segments. Letters a-z and A-Z are reserved for tokens; text in
// single quotes is literal and '' is a quote.
func compilePattern(pattern string) ([]segment, error) {
	if pattern == "" {
		return nil, errEmptyPattern
	}

	var (
		segs []segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			closed := false
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						lit.WriteRune('\'')
						j += 2
						continue
					}
					closed = true
					break
				}
				lit.WriteRune(runes[j])
				j++
			}
			if !closed {
				return nil, errUnterminatedQuote
			}
			i = j + 1

		case isPatternLetter(r):
			n := 1
			for i+n < len(runes) && runes[i+n] == r {
				n++
			}
			seg, err := tokenSegment(r, n)
			if err != nil {
				return nil, err
			}
			flush()
			segs = append(segs, seg)
			i += n

		default:
			lit.WriteRune(r)
			i++
		}
	}
	flush()
	return segs, nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func tokenSegment(r rune, n int) (segment, error) {
	layout := ""
	switch r {
	case 'y':
		layout = "2006"
		if n == 2 {
			layout = "06"
		}
	case 'M', 'L':
		layout = pick(n, "1", "01", "Jan", "January")
	case 'D':
		return segment{number: r, width: min(n, 3)}, nil
	case 'd':
		layout = pick(n, "2", "02")
	case 'E':
		layout = pick(n, "Mon", "Mon", "Mon", "Monday")
	case 'H':
		layout = "15"
	case 'h':
		layout = pick(n, "3", "03")
	case 'k', 'K':
		return segment{number: r, width: min(n, 2)}, nil
	case 'm':
		layout = pick(n, "4", "04")
	case 's':
		layout = pick(n, "5", "05")
	case 'S':
		return segment{layout: "." + strings.Repeat("0", min(n, 9)), fraction: true}, nil
	case 'a':
		layout = "PM"
	case 'Z':
		layout = pick(n, "-0700", "-0700", "-0700", "-07:00")
	case 'z':
		layout = "MST"
	default:
		return segment{}, fmt.Errorf("unsupported pattern letter %q", r)
	}
	return segment{layout: layout}, nil
}

// pick returns the choice for a run of n letters; longer runs use the last choice.
func pick(n int, choices ...string) string {
	return choices[min(n, len(choices))-1]
}

func renderSegments(segs []segment, t time.Time) string {
	var b strings.Builder
	for _, s := range segs {
		switch {
		case s.number != 0:
			fmt.Fprintf(&b, "%0*d", s.width, numberValue(s.number, t))
		case s.layout == "":
			b.WriteString(s.literal)
		case s.fraction:
			b.WriteString(t.Format(s.layout)[1:])
		default:
			b.WriteString(t.Format(s.layout))
		}
	}
	return b.String()
}

func numberValue(field rune, t time.Time) int {
	switch field {
	case 'k':
		if h := t.Hour(); h > 0 {
			return h
		}
		return 24
	case 'K':
		return t.Hour() % 12
	default:
		return t.YearDay()
	}
}
