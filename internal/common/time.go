package common

import (
	"bytes"
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision, the
// timestamp format used in API response bodies.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for
// log entry timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Time wraps time.Time so JSON output always carries RFC3339Millis
// precision regardless of the stored resolution.
type Time struct {
	time.Time
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now returns the current instant as a Time.
func Now() Time {
	return Time{Time: time.Now()}
}

// MarshalJSON renders the instant in UTC with millisecond precision.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp. JSON null leaves the
// existing value untouched, matching time.Time.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}
