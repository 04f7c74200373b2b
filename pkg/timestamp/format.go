package timestamp

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	errUtils "github.com/cloudposse/timestamp/errors"
)

type formatKind int

const (
	kindHourMinSec formatKind = iota
	kindMinSec
	kindCustom
	kindStrftime
)

// Format selects the display pattern for the cursor.
type Format struct {
	kind    formatKind
	pattern string
}

var (
	// HourMinSec renders "HH:mm:ss".
	HourMinSec = Format{kind: kindHourMinSec}
	// MinSec renders "mm:ss".
	MinSec = Format{kind: kindMinSec}
)

// Custom renders a date template such as "HH:mm" or "d MMM, HH:mm:ss".
func Custom(pattern string) Format {
	return Format{kind: kindCustom, pattern: pattern}
}

// Strftime renders a strftime pattern such as "%H:%M:%S".
func Strftime(pattern string) Format {
	return Format{kind: kindStrftime, pattern: pattern}
}

// Pattern resolves the format to its template string.
func (f Format) Pattern() string {
	switch f.kind {
	case kindHourMinSec:
		return "HH:mm:ss"
	case kindMinSec:
		return "mm:ss"
	default:
		return f.pattern
	}
}

func (f Format) String() string {
	switch f.kind {
	case kindHourMinSec:
		return "hms"
	case kindMinSec:
		return "ms"
	case kindStrftime:
		return strftimePrefix + f.pattern
	default:
		return f.pattern
	}
}

// Render formats t. It returns false when the pattern is invalid or renders to nothing.
func (f Format) Render(t time.Time) (string, bool) {
	var out string
	if f.kind == kindStrftime {
		if f.pattern == "" {
			return "", false
		}
		layout, err := strftime.Layout(f.pattern)
		if err != nil {
			return "", false
		}
		out = t.Format(layout)
	} else {
		segs, err := compilePattern(f.Pattern())
		if err != nil {
			return "", false
		}
		out = renderSegments(segs, t)
	}
	return out, out != ""
}

// Validate reports why the format cannot render, or nil.
func (f Format) Validate() error {
	var err error
	if f.kind == kindStrftime {
		if f.pattern == "" {
			err = errEmptyPattern
		} else {
			_, err = strftime.Layout(f.pattern)
		}
	} else {
		_, err = compilePattern(f.Pattern())
	}
	if err == nil {
		return nil
	}
	return errUtils.Build(errUtils.ErrInvalidFormat).
		WithCause(err).
		WithContext("pattern", f.Pattern()).
		WithHint("Use 'hms', 'ms', a date template like 'HH:mm', or 'strftime:%H:%M'").
		Err()
}

const strftimePrefix = "strftime:"

// ParseFormat maps "hms" and "ms" (and their long names) to the built-in formats,
// "strftime:<pattern>" to Strftime and anything else to Custom.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Format{}, errUtils.Build(errUtils.ErrInvalidFormat).
			WithHint("Use 'hms', 'ms', a date template like 'HH:mm', or 'strftime:%H:%M'").
			Err()
	case "hms", "hour-min-sec", "hourminsec":
		return HourMinSec, nil
	case "ms", "min-sec", "minsec":
		return MinSec, nil
	}
	if p, ok := strings.CutPrefix(s, strftimePrefix); ok {
		return Strftime(p), nil
	}
	return Custom(s), nil
}
