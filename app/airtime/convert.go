package airtime

import "fmt"

// Observed feed convention for filling in missing seconds: start times fill
// with "05", end times with "29". Kept as explicit converter parameters
// rather than hidden constants.
const (
	DefaultStartFill = "05"
	DefaultEndFill   = "29"
)

const timeTokenLen = 6 // HHmmss

// ConvertExtended maps a raw extended-clock time token onto an absolute
// timestamp. The token is HHmmss, possibly truncated, with hours running
// 0-29: hour 24 and above denotes the early morning of the day after the
// nominal broadcast date. A truncated token is right-padded from
// secondsFill before parsing.
//
// The rollover is deliberate integer arithmetic (subtract 24, advance the
// date one day), kept apart from the strict calendar validation that treats
// library auto-correction as an error.
func ConvertExtended(date DateOnly, token, secondsFill string) (DateTimeString, error) {
	if len(token) > timeTokenLen {
		return "", fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidTimeToken, token, timeTokenLen)
	}
	if len(token) < 4 || !isDigits(token) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeToken, token)
	}
	if len(token) < timeTokenLen {
		token = (token + secondsFill)[:timeTokenLen]
	}
	if !isDigits(token) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeToken, token)
	}

	hour := atoi(token[0:2])
	min := atoi(token[2:4])
	sec := atoi(token[4:6])

	if hour > 29 {
		return "", fmt.Errorf("%w: hour %d outside extended clock", ErrInvalidTimeToken, hour)
	}
	if hour >= 24 {
		hour -= 24
		date = date.AddDays(1)
	}

	t := date.Time()
	dt, err := NewDateTime(t.Year(), int(t.Month()), t.Day(), hour, min, sec, 0)
	if err != nil {
		return "", err
	}
	return dt.String(), nil
}
