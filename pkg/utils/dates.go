package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date layouts used across the terminal protocol
const (
	DDMonLayout     = "02JAN"
	SlashDateLayout = "2/1/2006"
	HHMMLayout      = "1504"
)

var ddMonPattern = regexp.MustCompile(`^(\d{1,2})([A-Z]{3})(\d{2})?$`)

var monthsByCode = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var monthCodes = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// ParseDDMon parses a legacy-style date such as 15NOV or 15NOV26.
// When the year is omitted it resolves to the next occurrence of that
// day relative to ref.
func ParseDDMon(s string, ref time.Time) (time.Time, error) {
	m := ddMonPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DDMON", s)
	}

	day, _ := strconv.Atoi(m[1])
	month, ok := monthsByCode[m[2]]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q", m[2])
	}

	year := ref.Year()
	if m[3] != "" {
		yy, _ := strconv.Atoi(m[3])
		year = 2000 + yy
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid day %d for %s", day, m[2])
	}

	// No explicit year: a date earlier than today means next year
	if m[3] == "" {
		today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			date = date.AddDate(1, 0, 0)
		}
	}

	return date, nil
}

// FormatDDMon renders a date in the legacy 15NOV style
func FormatDDMon(t time.Time) string {
	return fmt.Sprintf("%02d%s", t.Day(), monthCodes[int(t.Month())-1])
}

// ParseSlashDate parses the D/M/YYYY dialect used by form inputs
func ParseSlashDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(SlashDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected D/M/YYYY", s)
	}
	return t, nil
}

// DayOfWeekCode returns the single-digit day code used in segment
// lines, 1 for Monday through 7 for Sunday
func DayOfWeekCode(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return strconv.Itoa(wd)
}

// CombineDateTime attaches an HHMM time of day to a date
func CombineDateTime(date time.Time, hhmm string) (time.Time, error) {
	hhmm = strings.TrimSpace(hhmm)
	if len(hhmm) != 4 {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HHMM", hhmm)
	}
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(hhmm[2:])
	if err != nil || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC), nil
}

// ArrivalFrom derives the arrival timestamp from departure plus the
// flight duration in minutes; the date may roll over to the next day
func ArrivalFrom(departure time.Time, durationMinutes int) time.Time {
	return departure.Add(time.Duration(durationMinutes) * time.Minute)
}

// FormatHHMM renders a time of day as a 4-digit block
func FormatHHMM(t time.Time) string {
	return fmt.Sprintf("%02d%02d", t.Hour(), t.Minute())
}
