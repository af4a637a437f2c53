// Package tui is a terminal preview of the timeline, built with BubbleTea and
// Lipgloss. It drives the same geometry and scroller as the Fyne widget, with
// one terminal cell standing in for one pixel.
//
// Component architecture:
//
//	model.go: root model, message routing, Init/Update
//	view.go:  header, timeline body and footer rendering
//	theme.go: colour and style definitions
package tui
