package config

// Package config resolves the construction-time style of a timeline: defaults in
// device-independent units, persisted preferences for the Fyne app, and style
// files with environment overrides for the terminal preview.
