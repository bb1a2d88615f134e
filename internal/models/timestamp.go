package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are the layouts accepted for data_cadastro, most specific first
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a server timestamp that remembers its original text so the
// record can be sent back to the server unchanged.
type Timestamp struct {
	time.Time
	raw string
	// rawJSON holds a non-string value exactly as received
	rawJSON json.RawMessage
}

// NewTimestamp wraps t; it marshals as RFC 3339
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses value using the accepted layouts
func ParseTimestamp(value string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t, raw: value}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// UnmarshalJSON accepts null, an empty string, any accepted layout, or a
// number of milliseconds since the epoch. Other values keep their raw JSON
// and a zero time; a single odd record never fails the decode.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		*ts = nonStringTimestamp(data)
		return nil
	}
	if value == "" {
		*ts = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(value)
	if err != nil {
		*ts = Timestamp{raw: value}
		return nil
	}
	*ts = parsed
	return nil
}

// nonStringTimestamp keeps data verbatim, reading numbers as epoch milliseconds
func nonStringTimestamp(data []byte) Timestamp {
	ts := Timestamp{rawJSON: append(json.RawMessage(nil), data...)}
	var millis float64
	if err := json.Unmarshal(data, &millis); err == nil {
		ts.Time = time.UnixMilli(int64(millis)).UTC()
	}
	return ts
}

// MarshalJSON writes the original value when there is one
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.rawJSON != nil {
		return ts.rawJSON, nil
	}
	if ts.raw != "" {
		return json.Marshal(ts.raw)
	}
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339Nano))
}

// DateString renders the date part (dd/mm/yyyy), or "-" when unknown
func (ts Timestamp) DateString() string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("02/01/2006")
}
