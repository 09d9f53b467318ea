// Package timex provides date and time helpers for the uvroot toolkit.
//
// Package: timex
// Title: Time Utilities
// Description: ISO-8601 parsing, named output formats, calendar deltas in
//              days/hours/minutes, day sequences and business day counting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Fixed business day logic
// - 2026-10-17 v0.2.0: ParseISO, Delta and DaySequence; removed timezone and
//                      duration helpers nobody called
//
// Usage:
//
//	t, err := timex.ParseISO("2025-06-15T12:30:00")
//	fmt.Println(timex.Format(t, "weekday"))        // Sunday
//	d := timex.Delta(start, end)                    // {Days: 364, Hours: 23, Minutes: 59}
//	n := timex.BusinessDaysBetween(start, end)      // inclusive, Mon-Fri
package timex
