package market

import "testing"

func TestValidate_AcceptsCleanSnapshot(t *testing.T) {
	s := Snapshot{
		Categories: map[string][]Entry{"currency": {{Name: "Chaos Orb", ChaosValue: 1}}},
		Gems:       []GemEntry{{Name: "Fireball", Level: 1, ChaosValue: 2}},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() failed on a clean snapshot: %v", err)
	}
}

func TestValidate_RejectsDuplicateEntryInCategory(t *testing.T) {
	s := Snapshot{Categories: map[string][]Entry{"currency": {
		{Name: "Chaos Orb", ChaosValue: 1},
		{Name: "Chaos Orb", ChaosValue: 2},
	}}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected an error for a duplicate entry name within a category")
	}
}

func TestValidate_RejectsNegativeChaosValue(t *testing.T) {
	s := Snapshot{Categories: map[string][]Entry{"currency": {{Name: "Chaos Orb", ChaosValue: -1}}}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected an error for a negative chaos value")
	}
}

func TestValidate_RejectsDuplicateGemVariant(t *testing.T) {
	s := Snapshot{Gems: []GemEntry{
		{Name: "Fireball", Level: 1, Quality: 0, ChaosValue: 2},
		{Name: "Fireball", Level: 1, Quality: 0, ChaosValue: 3},
	}}
	if err := s.Validate(); err == nil {
		t.Fatal("expected an error for a duplicate gem (name,level,quality,corrupted) tuple")
	}
}

func TestValidate_AllowsSameGemNameAtDifferentLevel(t *testing.T) {
	s := Snapshot{Gems: []GemEntry{
		{Name: "Fireball", Level: 1, ChaosValue: 2},
		{Name: "Fireball", Level: 2, ChaosValue: 3},
	}}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() failed for distinct levels of the same gem: %v", err)
	}
}

func TestCategory_ReturnsNilForAbsentCategory(t *testing.T) {
	s := Snapshot{}
	if got := s.Category("not-a-category"); got != nil {
		t.Errorf("expected nil for an absent category, got %v", got)
	}
}

func TestCategory_ReturnsEntries(t *testing.T) {
	s := Snapshot{Categories: map[string][]Entry{"currency": {{Name: "Chaos Orb"}}}}
	got := s.Category("currency")
	if len(got) != 1 || got[0].Name != "Chaos Orb" {
		t.Errorf("Category(currency) = %v, want one entry named Chaos Orb", got)
	}
}
