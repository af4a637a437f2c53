package model

import (
	"time"
)

// Timeline is an ordered collection of entries, first entry on top
type Timeline struct {
	Title     string
	Entries   []*Entry
	UpdatedAt time.Time
}

// NewTimeline creates an empty timeline
func NewTimeline(title string) *Timeline {
	return &Timeline{
		Title:     title,
		Entries:   make([]*Entry, 0),
		UpdatedAt: time.Now(),
	}
}

// AddEntry appends an entry to the end of the timeline
func (t *Timeline) AddEntry(entry *Entry) {
	t.Entries = append(t.Entries, entry)
	t.UpdatedAt = time.Now()
}

// RemoveEntry removes an entry by ID and reports whether it was found
func (t *Timeline) RemoveEntry(entryID string) bool {
	for i, entry := range t.Entries {
		if entry.ID == entryID {
			t.Entries = append(t.Entries[:i], t.Entries[i+1:]...)
			t.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// GetEntry returns an entry by ID
func (t *Timeline) GetEntry(entryID string) (*Entry, bool) {
	for _, entry := range t.Entries {
		if entry.ID == entryID {
			return entry, true
		}
	}
	return nil, false
}

// SetHidden updates the visibility of a specific entry
func (t *Timeline) SetHidden(entryID string, hidden bool) bool {
	entry, ok := t.GetEntry(entryID)
	if !ok {
		return false
	}
	entry.Hidden = hidden
	t.UpdatedAt = time.Now()
	return true
}

// GetVisibleEntries returns all entries that are not hidden
func (t *Timeline) GetVisibleEntries() []*Entry {
	var visible []*Entry
	for _, entry := range t.Entries {
		if !entry.Hidden {
			visible = append(visible, entry)
		}
	}
	return visible
}

// Len returns the number of entries, hidden ones included
func (t *Timeline) Len() int {
	return len(t.Entries)
}
