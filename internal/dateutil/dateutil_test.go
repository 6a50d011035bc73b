package dateutil

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseYearMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "valid", input: "2022-12", want: date(2022, time.December, 1)},
		{name: "single digit month", input: "2020-1", want: date(2020, time.January, 1)},
		{name: "missing month", input: "2022", wantErr: ErrInvalidYearMonth},
		{name: "full date", input: "2022-12-01", wantErr: ErrInvalidYearMonth},
		{name: "month out of range", input: "2022-13", wantErr: ErrInvalidYearMonth},
		{name: "month zero", input: "2022-00", wantErr: ErrInvalidYearMonth},
		{name: "not a number", input: "abcd-ef", wantErr: ErrInvalidYearMonth},
		{name: "empty", input: "", wantErr: ErrInvalidYearMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseYearMonth(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseYearMonth(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseYearMonth(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseYearMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveEnd(t *testing.T) {
	t.Parallel()

	now := date(2025, time.October, 16)
	for _, s := range []string{"present", "Present", "PRESENT"} {
		got, err := ResolveEnd(s, now)
		if err != nil || !got.Equal(now) {
			t.Errorf("ResolveEnd(%q) = %v, %v; want %v", s, got, err, now)
		}
	}
	if _, err := ResolveEnd("soon", now); !errors.Is(err, ErrInvalidYearMonth) {
		t.Errorf("ResolveEnd(%q) error = %v, want %v", "soon", err, ErrInvalidYearMonth)
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end time.Time
		want       Duration
	}{
		{"same month", date(2022, 12, 1), date(2022, 12, 1), Duration{}},
		{"across year boundary", date(2022, 12, 1), date(2025, 10, 1), Duration{2, 10}},
		{"three months", date(2022, 12, 1), date(2023, 3, 1), Duration{0, 3}},
		{"partial month is dropped", date(2022, 1, 15), date(2022, 3, 10), Duration{0, 1}},
		{"partial month borrows a year", date(2021, 3, 20), date(2022, 3, 5), Duration{0, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MonthsBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("MonthsBetween() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	t.Parallel()

	got := Sum(Duration{2, 10}, Duration{3, 5}, Duration{2, 2})
	if want := (Duration{8, 5}); got != want {
		t.Errorf("Sum() = %+v, want %+v", got, want)
	}
	if got := Sum(); got != (Duration{}) {
		t.Errorf("Sum() of nothing = %+v, want zero", got)
	}
}

func TestDurationString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{0, 0}, "0 months"},
		{Duration{0, 1}, "1 month"},
		{Duration{0, 5}, "5 months"},
		{Duration{1, 0}, "1 year"},
		{Duration{2, 0}, "2 years"},
		{Duration{2, 10}, "2 years, 10 months"},
		{Duration{1, 1}, "1 year, 1 month"},
	}

	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Duration%+v.String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDurationRoundedYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{9, 2}, "9 years"},
		{Duration{9, 6}, "10 years"},
		{Duration{9, 11}, "10 years"},
		{Duration{1, 0}, "1 year"},
		{Duration{0, 5}, "0 years"},
		{Duration{0, 9}, "1 year"},
	}

	for _, tt := range tests {
		if got := tt.d.RoundedYears(); got != tt.want {
			t.Errorf("Duration%+v.RoundedYears() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
