package utility

import (
	"time"
)

// TimestampLayout is the layout used by FormatTimestamp and ParseTimestamp
// (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in the local time zone using TimestampLayout.
// It returns an empty string if t is nil.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.In(time.Local).Format(TimestampLayout)
}

// FormatNow renders the current time using TimestampLayout.
func FormatNow() string {
	return FormatTimestamp(Ptr(time.Now()))
}

// ParseTimestamp parses s in the local time zone using TimestampLayout.
// It returns nil if s is blank or cannot be parsed.
//
// Example:
//
//	t := ParseTimestamp("2023-06-01 12:00:00")
//	FormatTimestamp(t) // "2023-06-01 12:00:00"
func ParseTimestamp(s string) *time.Time {
	if IsBlank(s) {
		return nil
	}

	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return nil
	}

	return &t
}

// CurrentEpochMillis returns the number of milliseconds elapsed since the Unix epoch.
func CurrentEpochMillis() int64 {
	return time.Now().UnixMilli()
}
