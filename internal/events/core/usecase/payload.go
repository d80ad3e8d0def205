package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"people-counting-service/internal/events/core/domain"
)

var (
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrInvalidTime      = fmt.Errorf("%w: missing or malformed UtcTime", ErrInvalidPayload)
	ErrInvalidDirection = fmt.Errorf("%w: direction must be in or out", ErrInvalidPayload)
	ErrInvalidCount     = fmt.Errorf("%w: count must be a non-negative integer", ErrInvalidPayload)
)

// utcLayouts are tried in order; values without an offset are read as UTC.
var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

type sensorPayload struct {
	UtcTime string      `json:"UtcTime"`
	Data    *sensorData `json:"Data"`
}

type sensorData struct {
	Direction string     `json:"Direction"`
	Count     countValue `json:"Count"`
}

// countValue accepts a JSON number or a numeric string. null and "" read as 0,
// fractions truncate toward zero.
type countValue int64

func (c *countValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*c = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			*c = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	if f < 0 || f >= math.MaxInt64 {
		return fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}

	*c = countValue(math.Trunc(f))
	return nil
}

type parsedPayload struct {
	UtcTime   time.Time
	Direction domain.Direction
	Count     int64
}

func parsePayload(raw []byte) (parsedPayload, error) {
	var p sensorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			return parsedPayload{}, err
		}
		return parsedPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	ts, err := parseUtcTime(p.UtcTime)
	if err != nil {
		return parsedPayload{}, err
	}

	if p.Data == nil {
		return parsedPayload{}, fmt.Errorf("%w: Data object missing", ErrInvalidDirection)
	}

	dir, ok := domain.ParseDirection(p.Data.Direction)
	if !ok {
		return parsedPayload{}, fmt.Errorf("%w: got %q", ErrInvalidDirection, p.Data.Direction)
	}

	return parsedPayload{
		UtcTime:   ts,
		Direction: dir,
		Count:     int64(p.Data.Count),
	}, nil
}

func parseUtcTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTime
	}
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}
