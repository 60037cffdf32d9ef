package airtime

import (
	"fmt"
	"strconv"
	"time"
)

// Temporal is the result of length-dispatched parsing: either a DateOnly or
// a DateTime.
type Temporal interface {
	Time() time.Time
	temporal()
}

func (DateOnly) temporal() {}
func (DateTime) temporal() {}

// ParseDate parses an 8-digit yyyyMMdd token. Calendar legality is checked
// by round trip; a structurally plausible but nonexistent date fails instead
// of normalizing to a neighbouring one.
func ParseDate(token string) (DateOnly, error) {
	if len(token) != DateStringLen || !isDigits(token) {
		return DateOnly{}, fmt.Errorf("%w: date token %q", ErrInvalidFormat, token)
	}
	year := atoi(token[0:4])
	month := atoi(token[4:6])
	day := atoi(token[6:8])
	return NewDateOnly(year, month, day)
}

// ParseDateTime parses a 14-digit yyyyMMddHHmmss token (implicit zero
// milliseconds) or a 17-digit yyyyMMddHHmmssSSS token.
func ParseDateTime(token string) (DateTime, error) {
	if (len(token) != DateTimeStringLen && len(token) != DateTimeMsStringLen) || !isDigits(token) {
		return DateTime{}, fmt.Errorf("%w: date-time token %q", ErrInvalidFormat, token)
	}
	year := atoi(token[0:4])
	month := atoi(token[4:6])
	day := atoi(token[6:8])
	hour := atoi(token[8:10])
	min := atoi(token[10:12])
	sec := atoi(token[12:14])
	ms := 0
	if len(token) == DateTimeMsStringLen {
		ms = atoi(token[14:17])
	}
	return NewDateTime(year, month, day, hour, min, sec, ms)
}

// ParseAuto dispatches on token length: 8 digits parse as a DateOnly, 14 or
// 17 digits as a DateTime.
func ParseAuto(token string) (Temporal, error) {
	switch len(token) {
	case DateStringLen:
		return ParseDate(token)
	case DateTimeStringLen, DateTimeMsStringLen:
		return ParseDateTime(token)
	default:
		return nil, fmt.Errorf("%w: token %q has length %d", ErrUnrecognizedFormat, token, len(token))
	}
}

// ParseDateLenient returns nil instead of an error for absent or malformed
// input, for boundaries where one bad field must not abort a batch.
func ParseDateLenient(token string) *DateOnly {
	d, err := ParseDate(token)
	if err != nil {
		return nil
	}
	return &d
}

// ParseDateTimeLenient is the null-returning counterpart of ParseDateTime.
func ParseDateTimeLenient(token string) *DateTime {
	d, err := ParseDateTime(token)
	if err != nil {
		return nil
	}
	return &d
}

// ParseAutoLenient is the null-returning counterpart of ParseAuto.
func ParseAutoLenient(token string) Temporal {
	v, err := ParseAuto(token)
	if err != nil {
		return nil
	}
	return v
}

// atoi converts a pre-validated digit substring. Inputs reach here only
// after the digits-only check, so the error path is unreachable.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
