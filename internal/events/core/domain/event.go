package domain

import "strings"

// TimestampLayout is the local wall-clock format stored in counts.timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// ParseDirection accepts "in"/"out" in any case, surrounding whitespace ignored.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionIn:
		return DirectionIn, true
	case DirectionOut:
		return DirectionOut, true
	default:
		return "", false
	}
}

// CountEvent is one line-crossing report as persisted in the counts table.
type CountEvent struct {
	ID         int64
	Timestamp  string // local wall-clock, TimestampLayout
	Direction  Direction
	Count      int64
	RawPayload string
}
