package guide

import (
	"testing"

	"github.com/ymgch/epg-comb/app/airtime"
)

func fillerTestDate(t *testing.T) airtime.DateOnly {
	t.Helper()
	d, err := airtime.ParseDate("20250101")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func prog(station, id string, ft, to airtime.DateTimeString) Program {
	return Program{
		StationID: station,
		ProgramID: id,
		Ft:        ft,
		To:        to,
		Title:     "title " + id,
	}
}

func checkContiguous(t *testing.T, timeline []Program) {
	t.Helper()
	for i := 0; i < len(timeline)-1; i++ {
		if timeline[i].To != timeline[i+1].Ft {
			t.Errorf("Gap at index %d: %q != %q", i, timeline[i].To, timeline[i+1].Ft)
		}
	}
}

func TestFillerCoversGaps(t *testing.T) {
	filler := NewFiller()
	date := fillerTestDate(t)

	input := []Program{
		prog("TBS", "a", "20250101060000", "20250101100000"),
		prog("TBS", "b", "20250101120000", "20250102010000"), // ends 25:00 extended
	}

	timeline, err := filler.Run("TBS", date, input)
	if err != nil {
		t.Fatal(err)
	}

	// leading filler, a, middle filler, b, closing filler
	if len(timeline) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(timeline))
	}
	checkContiguous(t, timeline)

	if timeline[0].Ft != "20250101000000" || timeline[0].To != "20250101060000" {
		t.Errorf("Unexpected leading filler: [%s, %s)", timeline[0].Ft, timeline[0].To)
	}
	if timeline[1].ProgramID != "a" {
		t.Errorf("Expected real program 'a' second, got %q", timeline[1].ProgramID)
	}
	if timeline[2].Ft != "20250101100000" || timeline[2].To != "20250101120000" {
		t.Errorf("Unexpected middle filler: [%s, %s)", timeline[2].Ft, timeline[2].To)
	}

	last := timeline[len(timeline)-1]
	if last.To != "20250102050000" {
		t.Errorf("Timeline must close at the extended boundary, got %q", last.To)
	}

	// Filler records carry empty descriptive fields and derived ids.
	if timeline[0].Title != "" || timeline[0].Info != "" || timeline[0].Pfm != "" || timeline[0].Img != "" {
		t.Errorf("Filler must have empty descriptive fields: %+v", timeline[0])
	}
	if timeline[0].ProgramID != "TBS_20250101000000" {
		t.Errorf("Unexpected filler id %q", timeline[0].ProgramID)
	}
	if timeline[0].StationID != "TBS" {
		t.Errorf("Filler must carry the station id, got %q", timeline[0].StationID)
	}
}

func TestFillerNoOpOnContiguousInput(t *testing.T) {
	filler := NewFiller()
	date := fillerTestDate(t)

	input := []Program{
		prog("TBS", "a", "20250101000000", "20250101120000"),
		prog("TBS", "b", "20250101120000", "20250102050000"),
	}

	timeline, err := filler.Run("TBS", date, input)
	if err != nil {
		t.Fatal(err)
	}

	if len(timeline) != 2 {
		t.Fatalf("Contiguous input must gain no records, got %d", len(timeline))
	}
	if timeline[0].ProgramID != "a" || timeline[1].ProgramID != "b" {
		t.Errorf("Order not preserved: %q, %q", timeline[0].ProgramID, timeline[1].ProgramID)
	}
}

func TestFillerZeroLengthGap(t *testing.T) {
	filler := NewFiller()
	date := fillerTestDate(t)

	// Adjacent programs with equal boundary: nothing synthesized between them.
	input := []Program{
		prog("TBS", "a", "20250101000000", "20250101060000"),
		prog("TBS", "b", "20250101060000", "20250101120000"),
	}

	timeline, err := filler.Run("TBS", date, input)
	if err != nil {
		t.Fatal(err)
	}

	// Only the closing filler is added.
	if len(timeline) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(timeline))
	}
	checkContiguous(t, timeline)
	if timeline[2].To != "20250102050000" {
		t.Errorf("Expected closing filler to '20250102050000', got %q", timeline[2].To)
	}
}

func TestFillerEmptyBlock(t *testing.T) {
	filler := NewFiller()
	date := fillerTestDate(t)

	timeline, err := filler.Run("TBS", date, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(timeline) != 0 {
		t.Errorf("Empty block must produce no timeline, got %d records", len(timeline))
	}
}

func TestFillerDayEndingAtBoundary(t *testing.T) {
	filler := NewFiller()
	date := fillerTestDate(t)

	// A single program covering the whole extended day gains nothing.
	input := []Program{
		prog("TBS", "all", "20250101000000", "20250102050000"),
	}

	timeline, err := filler.Run("TBS", date, input)
	if err != nil {
		t.Fatal(err)
	}
	if len(timeline) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(timeline))
	}
}
