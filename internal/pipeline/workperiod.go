package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/enkron/mdpdf/internal/dateutil"
)

// TotalWorkPeriodMarker is replaced by the sum of all work periods.
const TotalWorkPeriodMarker = "{{total_work_period}}"

// workPeriodPattern matches {{work_period: start="YYYY-MM", end="YYYY-MM"|"present"}}.
var workPeriodPattern = regexp.MustCompile(`\{\{work_period:\s*start="([^"]+)",?\s*end="([^"]+)"\}\}`)

// WorkPeriods expands employment-period markers into human-readable
// durations.
type WorkPeriods struct {
	// Now returns the date used for end="present". Defaults to time.Now.
	Now func() time.Time
	// Fallback loads the document whose periods are summed when the input
	// itself has none but still asks for a total. Optional.
	Fallback func() (string, error)
}

// Expand replaces every work period marker with its duration ("2 years,
// 10 months") and the total marker with the rounded sum in years.
// Markers that fail to parse are left in place and reported as warnings.
func (w *WorkPeriods) Expand(content string) (string, []string) {
	now := w.now()
	var (
		durations []dateutil.Duration
		warnings  []string
	)

	out := workPeriodPattern.ReplaceAllStringFunc(content, func(marker string) string {
		m := workPeriodPattern.FindStringSubmatch(marker)
		start, end := m[1], m[2]
		d, err := periodDuration(start, end, now)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("work period (start=%s, end=%s): %v", start, end, err))
			return marker
		}
		durations = append(durations, d)
		return d.String()
	})

	if !strings.Contains(out, TotalWorkPeriodMarker) {
		return out, warnings
	}

	if len(durations) == 0 && w.Fallback != nil {
		source, err := w.Fallback()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("reading work period source: %v", err))
		} else {
			durations = collectPeriods(source, now)
		}
	}

	total := dateutil.Sum(durations...)
	return strings.ReplaceAll(out, TotalWorkPeriodMarker, total.RoundedYears()), warnings
}

func (w *WorkPeriods) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// collectPeriods returns the durations of all parsable markers in source.
func collectPeriods(source string, now time.Time) []dateutil.Duration {
	var durations []dateutil.Duration
	for _, m := range workPeriodPattern.FindAllStringSubmatch(source, -1) {
		if d, err := periodDuration(m[1], m[2], now); err == nil {
			durations = append(durations, d)
		}
	}
	return durations
}

func periodDuration(start, end string, now time.Time) (dateutil.Duration, error) {
	from, err := dateutil.ParseYearMonth(start)
	if err != nil {
		return dateutil.Duration{}, err
	}
	to, err := dateutil.ResolveEnd(end, now)
	if err != nil {
		return dateutil.Duration{}, err
	}
	return dateutil.MonthsBetween(from, to), nil
}
