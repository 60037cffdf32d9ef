package airtime

import (
	"errors"
	"testing"
)

func mustDate(t *testing.T, token string) DateOnly {
	t.Helper()
	d, err := ParseDate(token)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestConvertExtendedRollover(t *testing.T) {
	date := mustDate(t, "20250101")

	// 25:00:00 on Jan 1 airs at 01:00:00 on Jan 2, regardless of fill.
	for _, fill := range []string{DefaultStartFill, DefaultEndFill, "00"} {
		got, err := ConvertExtended(date, "250000", fill)
		if err != nil {
			t.Fatalf("ConvertExtended failed with fill %q: %v", fill, err)
		}
		if got != "20250102010000" {
			t.Errorf("Expected '20250102010000' with fill %q, got %q", fill, got)
		}
	}
}

func TestConvertExtendedPlainHours(t *testing.T) {
	date := mustDate(t, "20250101")

	got, err := ConvertExtended(date, "083000", DefaultStartFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250101083000" {
		t.Errorf("Expected '20250101083000', got %q", got)
	}

	// 23:59:59 stays on the nominal date.
	got, err = ConvertExtended(date, "235959", DefaultEndFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250101235959" {
		t.Errorf("Expected '20250101235959', got %q", got)
	}
}

func TestConvertExtendedBoundaryHours(t *testing.T) {
	date := mustDate(t, "20250101")

	// Hour 24 is the first extended hour.
	got, err := ConvertExtended(date, "240000", DefaultStartFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250102000000" {
		t.Errorf("Expected '20250102000000', got %q", got)
	}

	// Hour 29 is the last.
	got, err = ConvertExtended(date, "290000", DefaultEndFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250102050000" {
		t.Errorf("Expected '20250102050000', got %q", got)
	}

	// Hour 30 is out of range.
	if _, err := ConvertExtended(date, "300000", DefaultEndFill); !errors.Is(err, ErrInvalidTimeToken) {
		t.Errorf("Expected ErrInvalidTimeToken for hour 30, got %v", err)
	}
}

func TestConvertExtendedSecondsFill(t *testing.T) {
	date := mustDate(t, "20250101")

	// A four-digit token takes its seconds from the fill.
	got, err := ConvertExtended(date, "0600", DefaultStartFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250101060005" {
		t.Errorf("Expected '20250101060005', got %q", got)
	}

	got, err = ConvertExtended(date, "0600", DefaultEndFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250101060029" {
		t.Errorf("Expected '20250101060029', got %q", got)
	}

	// A five-digit token takes only the fill's first digit.
	got, err = ConvertExtended(date, "06001", DefaultStartFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250101060010" {
		t.Errorf("Expected '20250101060010', got %q", got)
	}

	// Extended hour combined with fill.
	got, err = ConvertExtended(date, "2530", DefaultEndFill)
	if err != nil {
		t.Fatal(err)
	}
	if got != "20250102013029" {
		t.Errorf("Expected '20250102013029', got %q", got)
	}
}

func TestConvertExtendedRejectsBadTokens(t *testing.T) {
	date := mustDate(t, "20250101")

	for _, token := range []string{"", "06", "060", "06000a", "0600000", "0a00"} {
		if _, err := ConvertExtended(date, token, DefaultStartFill); !errors.Is(err, ErrInvalidTimeToken) {
			t.Errorf("ConvertExtended(%q) expected ErrInvalidTimeToken, got %v", token, err)
		}
	}

	// Minute out of range surfaces as a range error from the calendar layer.
	if _, err := ConvertExtended(date, "256000", DefaultStartFill); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for minute 60, got %v", err)
	}
}
