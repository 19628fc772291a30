package order

import "time"

// Order is one row of the orders table. Items holds the JSON text of the
// item array exactly as it was accepted at checkout.
type Order struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	Items     string
	CreatedAt int64 // unix seconds
}

// TimeLayout is ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func FormatUnix(sec int64) string {
	return FormatTime(time.Unix(sec, 0))
}
