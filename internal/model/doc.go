package model

// Package model defines the data structures shared by the timeline hosts:
// the orientation variant and the entries shown on a demo or preview timeline.
// Structures are plain values so the UI can bind them directly.
