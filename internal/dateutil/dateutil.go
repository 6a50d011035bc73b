// Package dateutil provides year-month parsing and duration arithmetic.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidYearMonth indicates a date that is not in YYYY-MM form.
var ErrInvalidYearMonth = errors.New("invalid year-month")

// Present is the end value that stands for the current date.
const Present = "present"

// ParseYearMonth parses "YYYY-MM" into the first day of that month (UTC).
func ParseYearMonth(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidYearMonth, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: bad year", ErrInvalidYearMonth, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q: bad month", ErrInvalidYearMonth, s)
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

// ResolveEnd parses an end date, mapping "present" (any case) to now.
func ResolveEnd(s string, now time.Time) (time.Time, error) {
	if strings.EqualFold(s, Present) {
		return now, nil
	}
	return ParseYearMonth(s)
}

// Duration is a calendar span in whole years and months.
type Duration struct {
	Years  int
	Months int
}

// MonthsBetween returns the whole years and months from start to end.
// A partial final month (end day before start day) is not counted.
func MonthsBetween(start, end time.Time) Duration {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	if months < 0 {
		years--
		months += 12
	}
	if end.Day() < start.Day() {
		months--
		if months < 0 {
			years--
			months += 12
		}
	}
	return Duration{Years: years, Months: months}
}

// Sum adds durations, carrying months into years.
func Sum(ds ...Duration) Duration {
	var total int
	for _, d := range ds {
		total += d.Years*12 + d.Months
	}
	return Duration{Years: total / 12, Months: total % 12}
}

// String formats d as "X years, Y months", omitting a zero part.
// A zero duration is "0 months".
func (d Duration) String() string {
	switch {
	case d.Years == 0 && d.Months == 0:
		return "0 months"
	case d.Years == 0:
		return plural(d.Months, "month")
	case d.Months == 0:
		return plural(d.Years, "year")
	default:
		return plural(d.Years, "year") + ", " + plural(d.Months, "month")
	}
}

// RoundedYears formats d in whole years, rounding up from six months.
func (d Duration) RoundedYears() string {
	years := d.Years
	if d.Months >= 6 {
		years++
	}
	return plural(years, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
