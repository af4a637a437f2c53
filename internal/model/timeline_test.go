package model

import "testing"

func TestTimeline_AddRemove(t *testing.T) {
	tl := NewTimeline("ops")
	a := NewEntry("a", "")
	b := NewEntry("b", "")
	c := NewEntry("c", "")
	tl.AddEntry(a)
	tl.AddEntry(b)
	tl.AddEntry(c)

	if tl.Len() != 3 {
		t.Fatalf("Expected 3 entries, got %d", tl.Len())
	}

	if !tl.RemoveEntry(b.ID) {
		t.Error("Expected RemoveEntry to find b")
	}
	if tl.RemoveEntry(b.ID) {
		t.Error("Expected second RemoveEntry to report missing entry")
	}

	if tl.Entries[0] != a || tl.Entries[1] != c {
		t.Error("Remaining entries should keep insertion order")
	}
}

func TestTimeline_GetVisibleEntries(t *testing.T) {
	tl := NewTimeline("ops")
	a := NewEntry("a", "")
	b := NewEntry("b", "")
	tl.AddEntry(a)
	tl.AddEntry(b)

	if !tl.SetHidden(a.ID, true) {
		t.Fatal("Expected SetHidden to find a")
	}
	if tl.SetHidden("missing", true) {
		t.Error("Expected SetHidden to report missing entry")
	}

	visible := tl.GetVisibleEntries()
	if len(visible) != 1 || visible[0] != b {
		t.Errorf("Expected only b to be visible, got %d entries", len(visible))
	}
	if tl.Len() != 2 {
		t.Errorf("Hidden entries still count towards Len, got %d", tl.Len())
	}
}
