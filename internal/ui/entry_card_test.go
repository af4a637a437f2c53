package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/timelineview/internal/model"
)

func TestNewEntryCard(t *testing.T) {
	test.NewApp()

	entry := model.NewEntry("Deployed", "v1.2.0 to production")
	card := NewEntryCard(entry)

	if card.Entry() != entry {
		t.Fatal("Card should keep the entry it was created with")
	}
	if card.titleLabel.Text != "Deployed" {
		t.Errorf("Expected title 'Deployed', got %q", card.titleLabel.Text)
	}
	if !card.detailLabel.Visible() {
		t.Error("Detail label should be visible when the entry has detail")
	}
	if card.timeLabel.Text != entry.GetTimeString() {
		t.Errorf("Expected time %q, got %q", entry.GetTimeString(), card.timeLabel.Text)
	}
}

func TestEntryCard_NilEntry(t *testing.T) {
	test.NewApp()

	card := NewEntryCard(nil)
	if card.Entry() == nil {
		t.Fatal("Nil entry should be replaced by a placeholder")
	}
	if card.Entry().ID != "placeholder" {
		t.Errorf("Expected placeholder entry, got %q", card.Entry().ID)
	}
	if card.timeLabel.Text != model.TimePlaceholder {
		t.Errorf("Expected time placeholder, got %q", card.timeLabel.Text)
	}
}

func TestEntryCard_HiddenEntryHidesCard(t *testing.T) {
	test.NewApp()

	entry := model.NewEntry("Draft", "")
	card := NewEntryCard(entry)
	if card.detailLabel.Visible() {
		t.Error("Empty detail should be hidden")
	}

	entry.Hidden = true
	card.Sync()
	if card.Visible() {
		t.Error("Card should be hidden with its entry")
	}

	entry.Hidden = false
	card.Sync()
	if !card.Visible() {
		t.Error("Card should be shown again")
	}
}

func TestEntryCard_MinSizeBounded(t *testing.T) {
	test.NewApp()

	card := NewEntryCard(model.NewEntry("x", ""))
	size := card.MinSize()
	if size.Width < CardMinWidth || size.Width > CardMaxWidth {
		t.Errorf("Width %v outside [%v, %v]", size.Width, CardMinWidth, CardMaxWidth)
	}
	if size.Height < CardMinHeight {
		t.Errorf("Height %v below %v", size.Height, CardMinHeight)
	}
}
