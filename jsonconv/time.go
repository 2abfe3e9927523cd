package jsonconv

import (
	"time"

	"github.com/jaxydog/ochre/convert"
)

// NewTimeRFC3339 returns a converter between time.Time and RFC3339 JSON
// strings. Decoding accepts RFC3339 with or without fractional seconds;
// encoding normalizes to UTC and trims trailing zeros.
func NewTimeRFC3339() Converter[time.Time] {
	return convert.MapInput(NewString(),
		func(s string) (time.Time, error) { return parseRFC3339(s) },
		func(t time.Time) (string, error) { return t.UTC().Format(time.RFC3339Nano), nil },
	)
}

// NewDuration returns a converter between time.Duration and JSON strings in
// Go duration syntax ("1h30m", "250ms").
func NewDuration() Converter[time.Duration] {
	return convert.MapInput(NewString(),
		func(s string) (time.Duration, error) { return time.ParseDuration(s) },
		func(d time.Duration) (string, error) { return d.String(), nil },
	)
}

// Shared time converters.
var (
	TimeRFC3339 = NewTimeRFC3339()
	Duration    = NewDuration()
)

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
