// Package ui contains the Fyne host for the timeline: the TimelineView widget,
// its renderer and input handling, and a small demo window built around it.
// All demo strings are localized via Localization.
package ui
