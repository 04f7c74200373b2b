package timestamp

import (
	"strings"

	errUtils "github.com/cloudposse/timestamp/errors"
)

// Direction is the sign of the per-tick cursor change.
type Direction int

const (
	// Increase adds the tick delta on every tick.
	Increase Direction = iota
	// Decrease subtracts the tick delta on every tick.
	Decrease
)

func (d Direction) String() string {
	if d == Decrease {
		return "decrease"
	}
	return "increase"
}

// ParseDirection accepts "increase"/"up" and "decrease"/"down".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increase", "up":
		return Increase, nil
	case "decrease", "down":
		return Decrease, nil
	}
	return Increase, errUtils.Build(errUtils.ErrInvalidDirection).
		WithContext("value", s).
		WithHint("Use 'increase' (or 'up') to count up, 'decrease' (or 'down') to count down").
		Err()
}
