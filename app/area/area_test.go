package area

import "testing"

func TestLookup(t *testing.T) {
	a, ok := Lookup("JP13")
	if !ok {
		t.Fatal("Expected JP13 to exist")
	}
	if a.Prefecture != "Tokyo" || a.Region != "Kanto" {
		t.Errorf("Unexpected area %+v", a)
	}

	if _, ok := Lookup("JP48"); ok {
		t.Error("Expected JP48 to be unknown")
	}
	if _, ok := Lookup("jp13"); ok {
		t.Error("Lookup is case sensitive, expected jp13 to be unknown")
	}
}

func TestIsValid(t *testing.T) {
	for _, id := range []string{"JP1", "JP13", "JP47"} {
		if !IsValid(id) {
			t.Errorf("Expected %s to be valid", id)
		}
	}
	for _, id := range []string{"", "JP0", "JP48", "TOKYO"} {
		if IsValid(id) {
			t.Errorf("Expected %s to be invalid", id)
		}
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 47 {
		t.Fatalf("Expected 47 areas, got %d", len(all))
	}
	if all[0].ID != "JP1" || all[46].ID != "JP47" {
		t.Errorf("Expected prefecture-code order, got %s .. %s", all[0].ID, all[46].ID)
	}

	// Mutating the returned slice must not touch the table.
	all[0].Prefecture = "Nowhere"
	if a, _ := Lookup("JP1"); a.Prefecture != "Hokkaido" {
		t.Error("All must return a copy")
	}
}

func TestInRegion(t *testing.T) {
	shikoku := InRegion("Shikoku")
	if len(shikoku) != 4 {
		t.Fatalf("Expected 4 Shikoku areas, got %d", len(shikoku))
	}
	if shikoku[0].ID != "JP36" || shikoku[3].ID != "JP39" {
		t.Errorf("Unexpected Shikoku order: %s .. %s", shikoku[0].ID, shikoku[3].ID)
	}

	if got := InRegion("Atlantis"); got != nil {
		t.Errorf("Expected nil for unknown region, got %v", got)
	}
}
