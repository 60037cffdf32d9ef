package airtime

import (
	"fmt"
	"strings"
	"time"
)

// Fixed-width wire formats used at the feed and storage boundaries.
const (
	DateStringLen       = 8  // yyyyMMdd
	DateTimeStringLen   = 14 // yyyyMMddHHmmss
	DateTimeMsStringLen = 17 // yyyyMMddHHmmssSSS
)

// DateString is a validated yyyyMMdd token. Construction checks width and
// digit-only content, not calendar legality.
type DateString string

// DateTimeString is a validated yyyyMMddHHmmss token.
type DateTimeString string

// DateTimeMsString is a validated yyyyMMddHHmmssSSS token.
type DateTimeMsString string

// NewDateString validates an 8-digit date token.
func NewDateString(s string) (DateString, error) {
	if len(s) != DateStringLen || !isDigits(s) {
		return "", fmt.Errorf("%w: date string %q", ErrInvalidFormat, s)
	}
	return DateString(s), nil
}

// NewDateTimeString validates a date-time token, right-padding short input
// with '0' up to 14 digits first.
func NewDateTimeString(s string) (DateTimeString, error) {
	s = padRight(s, DateTimeStringLen)
	if len(s) != DateTimeStringLen || !isDigits(s) {
		return "", fmt.Errorf("%w: date-time string %q", ErrInvalidFormat, s)
	}
	return DateTimeString(s), nil
}

// NewDateTimeMsString validates a millisecond-resolution token, right-padding
// short input with '0' up to 17 digits first.
func NewDateTimeMsString(s string) (DateTimeMsString, error) {
	s = padRight(s, DateTimeMsStringLen)
	if len(s) != DateTimeMsStringLen || !isDigits(s) {
		return "", fmt.Errorf("%w: date-time-ms string %q", ErrInvalidFormat, s)
	}
	return DateTimeMsString(s), nil
}

// DateOnly is a calendar date with time-of-day fixed at the start of day.
// It is distinct from DateTime at the type level; converting between the two
// goes through the named conversions below.
type DateOnly struct {
	t time.Time
}

// DateTime is a calendar date plus time-of-day at millisecond resolution.
type DateTime struct {
	t time.Time
}

// NewDateOnly constructs a DateOnly and rejects components that do not
// survive calendar re-derivation. time.Date normalizes out-of-range values
// (Feb 30 becomes Mar 2); that normalization is reported as an error here,
// never returned as a different date.
func NewDateOnly(year, month, day int) (DateOnly, error) {
	if month < 1 || month > 12 {
		return DateOnly{}, fmt.Errorf("%w: month %d", ErrInvalidRange, month)
	}
	if day < 1 || day > 31 {
		return DateOnly{}, fmt.Errorf("%w: day %d", ErrInvalidRange, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return DateOnly{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}
	// A timezone whose DST transition falls on midnight shifts the derived
	// time-of-day; that breaks the start-of-day invariant and is rejected
	// like any other normalization.
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return DateOnly{}, fmt.Errorf("%w: %04d-%02d-%02d has no midnight in %s", ErrInvalidCalendarDate, year, month, day, t.Location())
	}
	return DateOnly{t: t}, nil
}

// NewDateTime constructs a DateTime with the same round-trip legality check
// as NewDateOnly, extended to the time-of-day components.
func NewDateTime(year, month, day, hour, min, sec, ms int) (DateTime, error) {
	if month < 1 || month > 12 {
		return DateTime{}, fmt.Errorf("%w: month %d", ErrInvalidRange, month)
	}
	if day < 1 || day > 31 {
		return DateTime{}, fmt.Errorf("%w: day %d", ErrInvalidRange, day)
	}
	if hour < 0 || hour > 23 {
		return DateTime{}, fmt.Errorf("%w: hour %d", ErrInvalidRange, hour)
	}
	if min < 0 || min > 59 {
		return DateTime{}, fmt.Errorf("%w: minute %d", ErrInvalidRange, min)
	}
	if sec < 0 || sec > 59 {
		return DateTime{}, fmt.Errorf("%w: second %d", ErrInvalidRange, sec)
	}
	if ms < 0 || ms > 999 {
		return DateTime{}, fmt.Errorf("%w: millisecond %d", ErrInvalidRange, ms)
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, ms*int(time.Millisecond), time.Local)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec ||
		t.Nanosecond() != ms*int(time.Millisecond) {
		return DateTime{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d.%03d", ErrInvalidCalendarDate, year, month, day, hour, min, sec, ms)
	}
	return DateTime{t: t}, nil
}

// DateOnlyFromTime converts a plain timestamp, resetting time-of-day to the
// start of day.
func DateOnlyFromTime(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// DateTimeFromTime converts a plain timestamp, preserving time-of-day at
// millisecond resolution.
func DateTimeFromTime(t time.Time) DateTime {
	return DateTime{t: t.Truncate(time.Millisecond)}
}

// Time returns the underlying timestamp (start of day).
func (d DateOnly) Time() time.Time { return d.t }

// AddDays returns the date advanced by n calendar days.
func (d DateOnly) AddDays(n int) DateOnly {
	return DateOnly{t: d.t.AddDate(0, 0, n)}
}

// String formats the date as a yyyyMMdd token.
func (d DateOnly) String() DateString {
	return DateString(d.t.Format("20060102"))
}

// DateTime returns the same instant as a DateTime value. This is the only
// sanctioned crossing from DateOnly to DateTime.
func (d DateOnly) DateTime() DateTime { return DateTime{t: d.t} }

// Time returns the underlying timestamp.
func (d DateTime) Time() time.Time { return d.t }

// Date returns the calendar-date portion with time-of-day discarded.
func (d DateTime) Date() DateOnly { return DateOnlyFromTime(d.t) }

// String formats the value as a yyyyMMddHHmmss token.
func (d DateTime) String() DateTimeString {
	return DateTimeString(d.t.Format("20060102150405"))
}

// StringMs formats the value as a yyyyMMddHHmmssSSS token.
func (d DateTime) StringMs() DateTimeMsString {
	return DateTimeMsString(d.t.Format("20060102150405") + fmt.Sprintf("%03d", d.t.Nanosecond()/int(time.Millisecond)))
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat("0", width-len(s))
}
