package timestamp

import (
	"fmt"
	"math"
	"time"

	"github.com/cloudposse/timestamp/pkg/duration"
)

// Scale is the magnitude the cursor moves per tick: a value in seconds, minutes or hours.
type Scale struct {
	value float64
	unit  duration.Unit
}

// Sec is a tick delta of v seconds.
func Sec(v float64) Scale { return Scale{value: v, unit: duration.Second} }

// Min is a tick delta of v minutes.
func Min(v float64) Scale { return Scale{value: v, unit: duration.Minute} }

// Hour is a tick delta of v hours.
func Hour(v float64) Scale { return Scale{value: v, unit: duration.Hour} }

// DefaultScale is one second per tick.
var DefaultScale = Sec(1)

// Valid reports whether the scale is a finite amount greater than zero that
// fits in a time.Duration.
func (s Scale) Valid() bool {
	ns := s.Seconds() * float64(time.Second)
	return s.value > 0 && !math.IsInf(ns, 0) && !math.IsNaN(ns) && ns < float64(math.MaxInt64)
}

// Seconds resolves the scale to seconds.
func (s Scale) Seconds() float64 {
	return s.value * s.unit.Seconds()
}

// Duration resolves the scale to a time.Duration.
func (s Scale) Duration() time.Duration {
	return duration.Amount{Value: s.value, Unit: s.unit}.Duration()
}

func (s Scale) String() string {
	return fmt.Sprintf("%g%s", s.value, s.unit)
}

// ParseScale parses strings such as "1s", "2m", "1.5h" or "minute".
func ParseScale(s string) (Scale, error) {
	a, err := duration.Parse(s)
	if err != nil {
		return Scale{}, err
	}
	return Scale{value: a.Value, unit: a.Unit}, nil
}
