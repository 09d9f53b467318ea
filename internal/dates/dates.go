// Package dates parses, formats and compares ISO-8601 timestamps.
package dates

import (
	"time"

	"github.com/msto63/uvroot/foundation/utils/timex"
	"github.com/msto63/uvroot/pkg/core/logging"
)

// sequencePreview is how many days FormatSequence lists
const sequencePreview = 5

// Timestamp is a moment as ISO text and unix seconds
type Timestamp struct {
	ISO  string `json:"iso" yaml:"iso"`
	Unix int64  `json:"unix" yaml:"unix"`
}

// Field is one named rendering of a time
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Parsed is a successfully parsed input
type Parsed struct {
	Original  string    `json:"original" yaml:"original"`
	Time      time.Time `json:"time" yaml:"time"`
	Formatted []Field   `json:"formatted" yaml:"formatted"`
}

// Range spans the earliest and latest parsed times
type Range struct {
	Earliest time.Time `json:"earliest" yaml:"earliest"`
	Latest   time.Time `json:"latest" yaml:"latest"`
	timex.Span `yaml:",inline"`
}

// Processed splits inputs into parsed and invalid ones
type Processed struct {
	Parsed  []Parsed `json:"parsed" yaml:"parsed"`
	Invalid []string `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// CurrentTimestamp renders now without zone, plus unix seconds. The
// microsecond fraction is omitted when it is zero.
func CurrentTimestamp(now time.Time) Timestamp {
	layout := timex.ISO8601Micro
	if now.Nanosecond()/1000 == 0 {
		layout = timex.ISO8601DateTime
	}
	return Timestamp{ISO: now.Format(layout), Unix: now.Unix()}
}

// FormatDatetime returns date, time, datetime, weekday and month in that
// order
func FormatDatetime(t time.Time) []Field {
	keys := []string{"date", "time", "datetime", "weekday", "month"}
	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Key: k, Value: timex.Format(t, k)}
	}
	return fields
}

// TimeDelta returns end - start as days, hours and minutes with days
// floored
func TimeDelta(start, end time.Time) timex.Span {
	return timex.Delta(start, end)
}

// ProcessDates parses every input. Unparseable inputs are logged and
// listed in Invalid.
func ProcessDates(inputs []string, logger *logging.Logger) Processed {
	if logger == nil {
		logger = logging.Nop()
	}
	out := Processed{Parsed: make([]Parsed, 0, len(inputs))}
	for _, s := range inputs {
		t, err := timex.ParseISO(s)
		if err != nil {
			logger.Warn("Invalid date format", "value", s, "error", err)
			out.Invalid = append(out.Invalid, s)
			continue
		}
		out.Parsed = append(out.Parsed, Parsed{Original: s, Time: t, Formatted: FormatDatetime(t)})
	}
	return out
}

// AnalyzeTimestamps finds the earliest and latest times and the span
// between them; false when parsed is empty
func AnalyzeTimestamps(parsed []Parsed) (Range, bool) {
	if len(parsed) == 0 {
		return Range{}, false
	}
	earliest, latest := parsed[0].Time, parsed[0].Time
	for _, p := range parsed[1:] {
		earliest = timex.Min(earliest, p.Time)
		latest = timex.Max(latest, p.Time)
	}
	return Range{Earliest: earliest, Latest: latest, Span: TimeDelta(earliest, latest)}, true
}

// Sequence returns n consecutive days from start
func Sequence(start time.Time, n int) []time.Time {
	return timex.DaySequence(start, n)
}

// SequenceEntry is one listed day of a sequence
type SequenceEntry struct {
	Date    string `json:"date" yaml:"date"`
	Weekday string `json:"weekday" yaml:"weekday"`
}

// FormatSequence lists the first five days and how many were left out
func FormatSequence(days []time.Time) (shown []SequenceEntry, more int) {
	n := len(days)
	if n > sequencePreview {
		more = n - sequencePreview
		n = sequencePreview
	}
	shown = make([]SequenceEntry, n)
	for i, d := range days[:n] {
		shown[i] = SequenceEntry{Date: timex.Format(d, "date"), Weekday: timex.Format(d, "weekday")}
	}
	return shown, more
}

// BusinessDays counts Monday to Friday days from start to end inclusive,
// 0 when start is after end
func BusinessDays(start, end time.Time) int {
	return timex.BusinessDaysBetween(start, end)
}
