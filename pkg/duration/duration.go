// Package duration parses the human-readable tick delta and offset strings
// accepted on the command line and in configuration.
package duration

import (
	"math"
	"strconv"
	"strings"
	"time"

	errUtils "github.com/cloudposse/timestamp/errors"
)

// Unit is the scale an Amount is expressed in.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
)

// Seconds returns the number of seconds in one Unit.
func (u Unit) Seconds() float64 {
	switch u {
	case Minute:
		return secondsPerMinute
	case Hour:
		return secondsPerHour
	default:
		return 1
	}
}

func (u Unit) String() string {
	switch u {
	case Minute:
		return "m"
	case Hour:
		return "h"
	default:
		return "s"
	}
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600

	bitSize64 = 64 // Bit size for float64 parsing.
)

// Amount is a positive quantity of a Unit, e.g. 2 minutes.
type Amount struct {
	Value float64
	Unit  Unit
}

// Duration converts the amount to a time.Duration.
func (a Amount) Duration() time.Duration {
	return time.Duration(a.Value * a.Unit.Seconds() * float64(time.Second))
}

// Parse parses an amount string.
//
// Supported formats:
//   - Plain seconds: "30", "1.5" → seconds
//   - Value with suffix: "30s", "2m", "1.5h"
//   - Keywords: "second", "minute", "hour"
//
// Examples:
//
//	Parse("2m")     → {2, Minute}, nil
//	Parse("90")     → {90, Second}, nil
//	Parse("hour")   → {1, Hour}, nil
//	Parse("5x")     → error
func Parse(s string) (Amount, error) {
	in := strings.TrimSpace(s)

	switch in {
	case "second":
		return Amount{Value: 1, Unit: Second}, nil
	case "minute":
		return Amount{Value: 1, Unit: Minute}, nil
	case "hour":
		return Amount{Value: 1, Unit: Hour}, nil
	}

	if v, err := strconv.ParseFloat(in, bitSize64); err == nil {
		return positive(in, v, Second)
	}

	if len(in) > 1 {
		valPart, suffix := in[:len(in)-1], in[len(in)-1]
		if v, err := strconv.ParseFloat(valPart, bitSize64); err == nil {
			switch suffix {
			case 's':
				return positive(in, v, Second)
			case 'm':
				return positive(in, v, Minute)
			case 'h':
				return positive(in, v, Hour)
			default:
				return Amount{}, errUtils.Build(errUtils.ErrInvalidDuration).
					WithExplanation("Unrecognized duration unit").
					WithContext("unit", string(suffix)).
					WithHint("Use 's' (seconds), 'm' (minutes) or 'h' (hours)").
					Err()
			}
		}
	}

	return Amount{}, errUtils.Build(errUtils.ErrInvalidDuration).
		WithExplanation("Unrecognized duration format").
		WithContext("value", in).
		WithHint("Use formats like '1s', '2m', '1.5h', or keywords like 'minute', 'hour'").
		Err()
}

func positive(in string, v float64, u Unit) (Amount, error) {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return Amount{}, errUtils.Build(errUtils.ErrInvalidDuration).
			WithExplanation("Duration must be a finite value greater than zero").
			WithContext("value", in).
			Err()
	}
	if v*u.Seconds()*float64(time.Second) >= math.MaxInt64 {
		return Amount{}, errUtils.Build(errUtils.ErrInvalidDuration).
			WithExplanation("Duration is too large").
			WithContext("value", in).
			WithHint("Use a duration shorter than 290 years").
			Err()
	}
	return Amount{Value: v, Unit: u}, nil
}

// ParseDuration parses an amount string and returns it as a time.Duration.
//
//	ParseDuration("9h") → 9 * time.Hour, nil
func ParseDuration(s string) (time.Duration, error) {
	a, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return a.Duration(), nil
}
