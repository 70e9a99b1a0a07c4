package util

import "time"

const DateLayout = "2006-01-02"

// Today returns the current calendar date as YYYY-MM-DD in local time.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Yesterday returns the calendar date one day before today.
func Yesterday() string {
	return time.Now().AddDate(0, 0, -1).Format(DateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date string.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}
