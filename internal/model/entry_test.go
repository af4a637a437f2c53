package model

import (
	"strings"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	before := time.Now()
	entry := NewEntry("  Deploy\tstarted\n", " rollout to eu-west ")

	if !strings.HasPrefix(entry.ID, EntryIDPrefix) {
		t.Errorf("Expected ID with prefix %q, got %q", EntryIDPrefix, entry.ID)
	}
	if entry.Title != "Deploy started" {
		t.Errorf("Expected cleaned title 'Deploy started', got %q", entry.Title)
	}
	if entry.Detail != "rollout to eu-west" {
		t.Errorf("Expected trimmed detail, got %q", entry.Detail)
	}
	if entry.At.Before(before) {
		t.Errorf("Expected At to be after %v, got %v", before, entry.At)
	}
	if entry.Hidden {
		t.Error("New entries should be visible")
	}
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewEntry("x", "").ID
		if seen[id] {
			t.Fatalf("Duplicate entry ID %s", id)
		}
		seen[id] = true
	}
}

func TestEntry_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		detail   string
		id       string
		expected string
	}{
		{"Build", "ignored", "entry-1", "Build"},
		{"", "first line\nsecond line", "entry-2", "first line"},
		{"", "", "entry-3", "entry-3"},
	}

	for _, test := range tests {
		entry := &Entry{ID: test.id, Title: test.title, Detail: test.detail}
		result := entry.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q detail=%q = %q, expected %q",
				test.title, test.detail, result, test.expected)
		}
	}
}

func TestEntry_GetTimeString(t *testing.T) {
	entry := &Entry{}
	if entry.GetTimeString() != TimePlaceholder {
		t.Errorf("Expected placeholder for zero time, got %q", entry.GetTimeString())
	}

	entry.At = time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)
	if entry.GetTimeString() != "09:05" {
		t.Errorf("Expected 09:05, got %q", entry.GetTimeString())
	}
}
