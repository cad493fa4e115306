package source

import (
	"time"

	"github.com/araddon/dateparse"
)

// isoLayouts covers the timestamp shapes the ATS feeds actually emit:
// full RFC 3339, offset without colon, and naive datetimes (assumed UTC).
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToUTCISO normalizes a time to an ISO-8601 UTC string with Z suffix and
// zero sub-second precision, the format every posted_at and date column
// carries.
func ToUTCISO(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}

// ParseISO parses an ISO-8601-ish timestamp. Naive values are assumed UTC.
func ParseISO(s string) (string, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ToUTCISO(t), true
		}
	}
	return "", false
}

// ParseEpochMillis converts a milliseconds-since-epoch value (Lever's
// createdAt shape).
func ParseEpochMillis(ms int64) string {
	return ToUTCISO(time.UnixMilli(ms))
}

// ParseEpochSeconds converts a seconds-since-epoch value (Amazon's
// createdDate shape).
func ParseEpochSeconds(sec int64) string {
	return ToUTCISO(time.Unix(sec, 0))
}

// ParseDateOnly parses a YYYY-MM-DD date as midnight UTC (Workable's
// published_on shape).
func ParseDateOnly(s string) (string, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	return ToUTCISO(t), true
}

// ParseLoose accepts ISO-8601 or any of the common formats the bespoke
// feeds use (Apple's postingDate, Uber's creation_date).
func ParseLoose(s string) (string, bool) {
	if iso, ok := ParseISO(s); ok {
		return iso, true
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", false
	}
	return ToUTCISO(t), true
}

// PostedAtFromRaw applies the shared numeric-or-string timestamp handling a
// few sources need: JSON numbers arrive as float64, strings as ISO.
func PostedAtFromRaw(v any, epoch func(int64) string) string {
	switch t := v.(type) {
	case float64:
		return epoch(int64(t))
	case string:
		if iso, ok := ParseISO(t); ok {
			return iso
		}
	}
	return ""
}
