package internal

import "time"

// DateLayout is the wire format for all calendar-date fields. Dates travel
// as plain YYYY-MM-DD strings; the empty string means unset.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDate reports whether s is empty or a well-formed calendar date.
func ValidDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := ParseDate(s)
	return err == nil
}
