package airtime

import (
	"errors"
	"testing"
)

func TestParseDateRoundTrip(t *testing.T) {
	tokens := []string{"20250101", "20240229", "19991231", "20251031"}

	for _, token := range tokens {
		d, err := ParseDate(token)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", token, err)
		}
		if string(d.String()) != token {
			t.Errorf("Round trip of %q produced %q", token, d.String())
		}
	}
}

func TestParseDateRejectsBadFormat(t *testing.T) {
	for _, token := range []string{"", "2025010", "202501011", "2025010a", "2025-01-01"} {
		_, err := ParseDate(token)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseDate(%q) expected ErrInvalidFormat, got %v", token, err)
		}
	}
}

func TestParseDateRejectsBadRange(t *testing.T) {
	_, err := ParseDate("20251301")
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for month 13, got %v", err)
	}
	_, err = ParseDate("20250100")
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for day 0, got %v", err)
	}
}

func TestParseDateRejectsImpossibleCalendarDate(t *testing.T) {
	// February 30 must fail, not silently normalize to March 2.
	_, err := ParseDate("20250230")
	if !errors.Is(err, ErrInvalidCalendarDate) {
		t.Fatalf("Expected ErrInvalidCalendarDate for 20250230, got %v", err)
	}

	// February 29 outside a leap year.
	_, err = ParseDate("20250229")
	if !errors.Is(err, ErrInvalidCalendarDate) {
		t.Errorf("Expected ErrInvalidCalendarDate for 20250229, got %v", err)
	}

	// April has no 31st.
	_, err = ParseDate("20250431")
	if !errors.Is(err, ErrInvalidCalendarDate) {
		t.Errorf("Expected ErrInvalidCalendarDate for 20250431, got %v", err)
	}
}

func TestParseDateTimeRoundTrip(t *testing.T) {
	d, err := ParseDateTime("20250101233059")
	if err != nil {
		t.Fatal(err)
	}
	if string(d.String()) != "20250101233059" {
		t.Errorf("Round trip produced %q", d.String())
	}

	// Millisecond resolution round-trips through the 17-digit form.
	d, err = ParseDateTime("20250101233059123")
	if err != nil {
		t.Fatal(err)
	}
	if string(d.StringMs()) != "20250101233059123" {
		t.Errorf("Millisecond round trip produced %q", d.StringMs())
	}
	if string(d.String()) != "20250101233059" {
		t.Errorf("Second-resolution formatting produced %q", d.String())
	}
}

func TestParseDateTimeRejectsBadComponents(t *testing.T) {
	tests := []struct {
		token string
		want  error
	}{
		{"20250101240000", ErrInvalidRange},    // hour 24 is not valid here; only the converter handles extended hours
		{"20250101236000", ErrInvalidRange},    // minute 60
		{"20250101233060", ErrInvalidRange},    // second 60
		{"202501012330", ErrInvalidFormat},     // 12 digits
		{"20250101233059x", ErrInvalidFormat},  // 15 chars
		{"2025023012000000x", ErrInvalidFormat}, // 17 chars, non-digit
		{"20250230120000", ErrInvalidCalendarDate},
	}

	for _, tt := range tests {
		_, err := ParseDateTime(tt.token)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseDateTime(%q) expected %v, got %v", tt.token, tt.want, err)
		}
	}
}

func TestParseAutoDispatch(t *testing.T) {
	v, err := ParseAuto("20250101")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(DateOnly); !ok {
		t.Errorf("Expected DateOnly for 8 digits, got %T", v)
	}

	v, err = ParseAuto("20250101120000")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(DateTime); !ok {
		t.Errorf("Expected DateTime for 14 digits, got %T", v)
	}

	v, err = ParseAuto("20250101120000123")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(DateTime); !ok {
		t.Errorf("Expected DateTime for 17 digits, got %T", v)
	}

	for _, token := range []string{"", "2025", "2025010112", "202501011200001234"} {
		_, err := ParseAuto(token)
		if !errors.Is(err, ErrUnrecognizedFormat) {
			t.Errorf("ParseAuto(%q) expected ErrUnrecognizedFormat, got %v", token, err)
		}
	}
}

func TestLenientVariants(t *testing.T) {
	if d := ParseDateLenient("20250101"); d == nil {
		t.Error("Expected value for valid date token")
	}
	if d := ParseDateLenient("20250230"); d != nil {
		t.Error("Expected nil for impossible date")
	}

	if d := ParseDateTimeLenient("20250101120000"); d == nil {
		t.Error("Expected value for valid date-time token")
	}
	if d := ParseDateTimeLenient("garbage"); d != nil {
		t.Error("Expected nil for malformed token")
	}

	if v := ParseAutoLenient("20250101"); v == nil {
		t.Error("Expected value for valid token")
	}
	if v := ParseAutoLenient("123"); v != nil {
		t.Error("Expected nil for unrecognized length")
	}
}
