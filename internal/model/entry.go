package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryIDPrefix prefixes every generated entry ID
const EntryIDPrefix = "entry-"

// Entry represents a single item placed on a timeline
type Entry struct {
	ID     string
	Title  string
	Detail string
	At     time.Time
	Hidden bool // hidden entries take no space and get no marker
}

// NewEntry creates an entry stamped with the current time
func NewEntry(title, detail string) *Entry {
	return &Entry{
		ID:     generateEntryID(),
		Title:  cleanText(title),
		Detail: strings.TrimSpace(detail),
		At:     time.Now(),
	}
}

// GetDisplayTitle returns title, the first detail line, or the ID in order of preference
func (e *Entry) GetDisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}

	if e.Detail != "" {
		line, _, _ := strings.Cut(e.Detail, "\n")
		return strings.TrimSpace(line)
	}

	return e.ID
}

// TimePlaceholder is shown instead of a time for entries without one
const TimePlaceholder = "—"

// GetTimeString returns the entry time as hh:mm, or TimePlaceholder if unset
func (e *Entry) GetTimeString() string {
	if e.At.IsZero() {
		return TimePlaceholder
	}
	return e.At.Format("15:04")
}

// cleanText collapses control whitespace so a title renders on one line
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}

// generateEntryID generates a unique, time ordered entry ID using UUID v7
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(EntryIDPrefix+"%d", time.Now().UnixNano())
	}
	return EntryIDPrefix + id.String()
}
