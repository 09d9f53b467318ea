// File: timex.go
// Title: Core Time Utilities
// Description: Parsing, formatting, calendar deltas and business day
//              calculations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Fixed business day logic
// - 2026-10-17 v0.2.0: ParseISO, Delta, DaySequence

package timex

import (
	"fmt"
	"strings"
	"time"
)

// Common time formats
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"
	ISO8601Micro    = "2006-01-02T15:04:05.000000"

	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessTime     = "15:04:05"

	WeekdayName = "Monday"
	MonthName   = "January"
)

// isoLayouts are tried in order by ParseISO. Fractional seconds after the
// seconds field are accepted by time.Parse without being in the layout.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 date or date-time with optional offset.
// Values without an offset are returned in UTC.
func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid isoformat string: %q", value)
}

// Format formats a time using a named format or, failing that, a Go layout
func Format(t time.Time, format string) string {
	switch format {
	case "iso8601":
		return t.Format(ISO8601)
	case "date", "iso8601-date":
		return t.Format(ISO8601Date)
	case "time", "iso8601-time":
		return t.Format(ISO8601Time)
	case "datetime", "business":
		return t.Format(BusinessDateTime)
	case "weekday":
		return t.Format(WeekdayName)
	case "month":
		return t.Format(MonthName)
	default:
		return t.Format(format)
	}
}

// Span is a non-negative remainder breakdown of a duration, normalized
// the way calendar arithmetic does it: Days may be negative, Hours and
// Minutes never are.
type Span struct {
	Days    int `json:"days" yaml:"days"`
	Hours   int `json:"hours" yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
}

// String returns "N days, H hours, M minutes"
func (s Span) String() string {
	return fmt.Sprintf("%d days, %d hours, %d minutes", s.Days, s.Hours, s.Minutes)
}

// Delta returns end - start split into days, hours and minutes. Days are
// floored, so a span of minus one second is -1 days, 23 hours, 59 minutes.
// Spans are computed from Unix seconds and are not limited to the range of
// time.Duration.
func Delta(start, end time.Time) Span {
	totalSeconds := end.Unix() - start.Unix()
	if end.Nanosecond()/1000 < start.Nanosecond()/1000 {
		totalSeconds--
	}
	days := floorDiv(totalSeconds, 86400)
	rem := totalSeconds - days*86400
	return Span{
		Days:    int(days),
		Hours:   int(rem / 3600),
		Minutes: int((rem % 3600) / 60),
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DaySequence returns n consecutive days starting at start
func DaySequence(start time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// Min returns the earlier of two times
func Min(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Max returns the later of two times
func Max(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// ===============================
// Business Day Functions
// ===============================

// BusinessDayConfig holds configuration for business day calculations
type BusinessDayConfig struct {
	// Weekend days (default: Saturday, Sunday)
	WeekendDays []time.Weekday
	// Holidays (specific dates, compared by calendar day)
	Holidays []time.Time
}

// DefaultBusinessDayConfig returns a Monday to Friday calendar without holidays
func DefaultBusinessDayConfig() *BusinessDayConfig {
	return &BusinessDayConfig{
		WeekendDays: []time.Weekday{time.Saturday, time.Sunday},
	}
}

// IsBusinessDay checks if the given time is a business day
func IsBusinessDay(t time.Time, config ...*BusinessDayConfig) bool {
	cfg := DefaultBusinessDayConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}

	for _, wd := range cfg.WeekendDays {
		if t.Weekday() == wd {
			return false
		}
	}

	y, m, d := t.Date()
	for _, holiday := range cfg.Holidays {
		hy, hm, hd := holiday.Date()
		if y == hy && m == hm && d == hd {
			return false
		}
	}
	return true
}

// BusinessDaysBetween counts business days from start to end, stepping one
// calendar day at a time from start while the day is not after end. Both
// ends are inclusive. Returns 0 when start is after end.
func BusinessDaysBetween(start, end time.Time, config ...*BusinessDayConfig) int {
	count := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if IsBusinessDay(current, config...) {
			count++
		}
	}
	return count
}
