package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/timelineview/internal/timeline"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader produces the top bar:
//
//	TIMELINE │ release notes │ offset 12/40
func (m Model) renderHeader() string {
	sep := headerSepStyle.Render(" │ ")
	parts := []string{
		headerBrandStyle.Render("TIMELINE"),
		sep,
		headerMetaStyle.Render(m.timeline.Title),
		sep,
		headerMetaStyle.Render(fmt.Sprintf("offset %d/%d", int(m.scroller.Offset()), int(m.maxScroll()))),
	}
	return headerBarStyle.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(strings.Join(parts, ""))
}

// renderBody measures the timeline into the body area, arranges the blocks at
// the scroll offset and draws line, markers and text into the cell grid
func (m Model) renderBody() string {
	children := m.children()
	size := m.geometry.Measure(children,
		timeline.Exact(float32(m.width)),
		timeline.Exact(float32(m.bodyHeight())))

	m.grid.Resize(int(size.Width), int(size.Height))
	m.geometry.Arrange(children, m.scroller.Offset())
	m.geometry.Draw(m.grid, children)

	vertical := m.geometry.Orientation().IsVertical()
	for i, b := range m.blocks {
		if !b.Visible() {
			continue
		}
		pos, bs := b.Position(), b.Size()
		x, y := floor(pos.X), floor(pos.Y)
		if vertical {
			y = floor(pos.Y + bs.Height/2)
		}
		m.grid.Put(x, y, b.Text, titleColor)
		if detail := m.timeline.Entries[i].Detail; detail != "" {
			m.grid.Put(x, y+1, detail, detailColor)
		}
	}

	return m.grid.Render()
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, hintKeyStyle.Render(h.key)+" "+h.desc)
	}
	return strings.Join(parts, "  ")
}

// renderFooter produces the bottom status bar with keyboard hints
func (m Model) renderFooter() string {
	left := m.statusMsg
	right := renderHints([]hint{
		{"j/k", "scroll"},
		{"drag", "fling"},
		{"x", "hide last"},
		{"q", "quit"},
	})

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return footerStyle.MaxWidth(m.width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}
