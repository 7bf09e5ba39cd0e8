package entity

import "time"

// TimestampLayout is the stored wire format for all timestamps. Fractional
// seconds are fixed width so string comparison preserves chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

func NowTimestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
