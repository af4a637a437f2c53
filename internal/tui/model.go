package tui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/model"
	"github.com/ytget/timelineview/internal/textcanvas"
	"github.com/ytget/timelineview/internal/timeline"
)

// Rows taken by the header and footer bars
const chromeRows = 2

// Fling animation frame interval
const flingFrame = 16 * time.Millisecond

// Rows scrolled per mouse wheel step
const wheelRows = 3

// Model is the root BubbleTea model for the timeline preview
type Model struct {
	timeline *model.Timeline
	geometry *timeline.Geometry
	scroller *timeline.Scroller
	blocks   []*timeline.Block
	grid     *textcanvas.Grid

	// Fling state; flingID discards ticks of a replaced fling
	fling      *timeline.Fling
	flingStart time.Time
	flingDone  float32
	flingID    int

	width  int
	height int

	statusMsg string
}

type flingTickMsg struct {
	id int
	at time.Time
}

// NewModel builds the preview for a loaded style file
func NewModel(file config.File) (Model, error) {
	if err := file.Style.Validate(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	geometry, err := timeline.NewGeometry(file.Style.Resolve(file.Density))
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	m := Model{
		timeline: file.Timeline(),
		geometry: geometry,
		scroller: timeline.NewScroller(file.Style.Orientation),
		grid:     textcanvas.NewGrid(0, 0),
	}
	for _, entry := range m.timeline.Entries {
		m.blocks = append(m.blocks, newEntryBlock(entry, file.Style.Orientation))
	}
	m.statusMsg = m.countStatus()
	return m, nil
}

// newEntryBlock sizes a block for the entry text: the title sits on the marker
// row and the detail below it
func newEntryBlock(entry *model.Entry, o model.Orientation) *timeline.Block {
	title := entry.GetDisplayTitle()
	width := utf8.RuneCountInString(title)
	lines := 1
	if entry.Detail != "" {
		width = max(width, utf8.RuneCountInString(entry.Detail))
		lines++
	}

	var b *timeline.Block
	if o.IsVertical() {
		b = timeline.NewBlock(title, float32(width), float32(lines+1))
	} else {
		b = timeline.NewBlock(title, float32(width+2), float32(lines))
	}
	b.SetHidden(entry.Hidden)
	return b
}

// Offset returns the current scroll offset in cells
func (m Model) Offset() float32 {
	return m.scroller.Offset()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroller.Clamp(0, m.maxScroll())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case flingTickMsg:
		return m.stepFling(msg)
	}

	return m, nil
}

// handleKey maps keys to scrolling; every key scroll stays inside the content
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down", "l", "right":
		m.scrollBy(1)
	case "k", "up", "h", "left":
		m.scrollBy(-1)
	case "pgdown", " ":
		m.scrollBy(float32(m.viewportExtent()))
	case "pgup":
		m.scrollBy(-float32(m.viewportExtent()))
	case "g", "home":
		m.stopFling()
		m.scroller.ScrollTo(0)
	case "G", "end":
		m.stopFling()
		m.scroller.ScrollTo(m.maxScroll())
	case "x":
		m.toggleLast()
	}
	return m, nil
}

// handleMouse drives the scroller with left button drags and scrolls on the wheel
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Body starts under the header row
	pos := fyne.NewPos(float32(msg.X), float32(msg.Y-1))

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-wheelRows)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(wheelRows)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.stopFling()
		m.scroller.Press(pos)
	case msg.Action == tea.MouseActionMotion:
		if m.scroller.Pressed() {
			m.scroller.Move(pos)
		}
	case msg.Action == tea.MouseActionRelease:
		if !m.scroller.Pressed() {
			return m, nil
		}
		m.scroller.Move(pos)
		if f := m.scroller.Release(); f != nil {
			return m, m.startFling(f)
		}
		m.scroller.Clamp(0, m.maxScroll())
	}
	return m, nil
}

func (m *Model) startFling(f *timeline.Fling) tea.Cmd {
	m.flingID++
	m.fling = f
	m.flingStart = time.Now()
	m.flingDone = 0
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	id := m.flingID
	return tea.Tick(flingFrame, func(t time.Time) tea.Msg {
		return flingTickMsg{id: id, at: t}
	})
}

// stepFling advances the fling to the tick time and stops at the content edges
func (m Model) stepFling(msg flingTickMsg) (tea.Model, tea.Cmd) {
	if m.fling == nil || msg.id != m.flingID {
		return m, nil
	}

	elapsed := msg.at.Sub(m.flingStart)
	target := m.fling.OffsetAt(elapsed)
	m.scroller.ScrollBy(target - m.flingDone)
	m.flingDone = target

	if m.scroller.Clamp(0, m.maxScroll()) || elapsed >= m.fling.Duration() {
		m.stopFling()
		return m, nil
	}
	return m, m.nextFrame()
}

func (m *Model) stopFling() {
	m.fling = nil
}

func (m *Model) scrollBy(delta float32) {
	m.stopFling()
	m.scroller.ScrollBy(delta)
	m.scroller.Clamp(0, m.maxScroll())
}

// toggleLast hides or shows the newest entry
func (m *Model) toggleLast() {
	n := len(m.blocks)
	if n == 0 {
		return
	}
	entry := m.timeline.Entries[n-1]
	m.timeline.SetHidden(entry.ID, !entry.Hidden)
	m.blocks[n-1].SetHidden(entry.Hidden)
	m.scroller.Clamp(0, m.maxScroll())
	m.statusMsg = m.countStatus()
}

func (m Model) children() []timeline.Child {
	children := make([]timeline.Child, 0, len(m.blocks))
	for _, b := range m.blocks {
		children = append(children, b)
	}
	return children
}

func (m Model) bodyHeight() int {
	return max(0, m.height-chromeRows)
}

func (m Model) viewportExtent() int {
	if m.geometry.Orientation().IsVertical() {
		return m.bodyHeight()
	}
	return m.width
}

func (m Model) maxScroll() float32 {
	return max(0, m.geometry.ContentExtent(m.children())-float32(m.viewportExtent()))
}

func (m Model) countStatus() string {
	visible := len(m.timeline.GetVisibleEntries())
	if m.timeline.Len() == 0 {
		return "No entries"
	}
	return fmt.Sprintf("%d/%d entries", visible, m.timeline.Len())
}
