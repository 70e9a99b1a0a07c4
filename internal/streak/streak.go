// Package streak holds the single canonical streak transition. Both the
// HTTP streak endpoint and the client mirror call Advance, so the two sides
// can never drift apart.
package streak

import "time"

const dateLayout = "2006-01-02"

// Advance applies one "mark active" event to a streak.
//
// All comparisons are calendar-day string equality on YYYY-MM-DD dates, not
// elapsed-time arithmetic:
//
//	no history            -> streak 1
//	last active today     -> unchanged
//	last active yesterday -> streak+1
//	anything older        -> reset to 1
func Advance(current int, lastActive *string, today string) (int, string) {
	if lastActive == nil || *lastActive == "" {
		return 1, today
	}

	switch *lastActive {
	case today:
		return current, today
	case yesterdayOf(today):
		return current + 1, today
	}

	return 1, today
}

func yesterdayOf(today string) string {
	t, err := time.Parse(dateLayout, today)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dateLayout)
}
