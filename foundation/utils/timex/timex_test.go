package timex

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseISO(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-01-01T00:00:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"2025-06-15T12:30:00", time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC), false},
		{"2025-06-15 12:30", time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC), false},
		{"2025-12-31", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"2025-12-31T23:59:59.250", time.Date(2025, 12, 31, 23, 59, 59, 250_000_000, time.UTC), false},
		{"2025-03-01T10:00:00+02:00", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), false},
		{"not-a-date", time.Time{}, true},
		{"2025-13-01", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISO(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseISO(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseISO(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 6, 15, 12, 30, 5, 0, time.UTC)
	tests := map[string]string{
		"date":     "2025-06-15",
		"time":     "12:30:05",
		"datetime": "2025-06-15 12:30:05",
		"weekday":  "Sunday",
		"month":    "June",
		"2006":     "2025",
	}
	for name, want := range tests {
		if got := Format(ts, name); got != want {
			t.Errorf("Format(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDelta(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		end  time.Time
		want Span
	}{
		{"full year", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), Span{364, 23, 59}},
		{"zero", start, Span{0, 0, 0}},
		{"ninety minutes", start.Add(90 * time.Minute), Span{0, 1, 30}},
		{"minus one second", start.Add(-time.Second), Span{-1, 23, 59}},
		{"minus two days", start.AddDate(0, 0, -2), Span{-2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Delta(start, tt.end)); diff != "" {
				t.Errorf("Delta() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	centuries := []struct {
		name       string
		start, end time.Time
		want       Span
	}{
		{"three centuries",
			time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Span{118704, 0, 0}},
		{"eight centuries",
			time.Date(1600, 2, 28, 12, 0, 0, 0, time.UTC),
			time.Date(2400, 3, 1, 6, 30, 0, 0, time.UTC),
			Span{292195, 18, 30}},
		{"three centuries backwards",
			time.Date(2025, 1, 1, 0, 0, 30, 0, time.UTC),
			time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC),
			Span{-118705, 23, 59}},
		{"sub-second borrow",
			time.Date(2025, 1, 1, 0, 0, 0, 500_000_000, time.UTC),
			time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC),
			Span{0, 0, 0}},
	}
	for _, tt := range centuries {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Delta(tt.start, tt.end)); diff != "" {
				t.Errorf("Delta() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := (Span{364, 23, 59}).String(); got != "364 days, 23 hours, 59 minutes" {
		t.Errorf("String() = %q", got)
	}
}

func TestDaySequence(t *testing.T) {
	start := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	seq := DaySequence(start, 4)
	if len(seq) != 4 {
		t.Fatalf("len = %d, want 4", len(seq))
	}
	if got := seq[3].Format(ISO8601Date); got != "2025-02-02" {
		t.Errorf("seq[3] = %s, want 2025-02-02", got)
	}
	if DaySequence(start, 0) != nil {
		t.Error("DaySequence(0) should be nil")
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			"year 2025",
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			261,
		},
		{
			"single weekday",
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			1,
		},
		{
			"weekend only",
			time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"reversed",
			time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BusinessDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("BusinessDaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsBusinessDay_Holidays(t *testing.T) {
	newYear := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	cfg := DefaultBusinessDayConfig()
	cfg.Holidays = []time.Time{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	if !IsBusinessDay(newYear) {
		t.Error("Wednesday should be a business day by default")
	}
	if IsBusinessDay(newYear, cfg) {
		t.Error("configured holiday should not be a business day")
	}
}

func TestMinMax(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(time.Hour)
	if !Min(a, b).Equal(a) || !Max(a, b).Equal(b) {
		t.Error("Min/Max returned wrong value")
	}
}
