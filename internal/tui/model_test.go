package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/model"
	"github.com/ytget/timelineview/internal/textcanvas"
)

// Three entries of 3, 2 and 3 rows in a 40x8 terminal: six body rows, two to scroll
func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.File{
		Title:   "release",
		Style:   config.DefaultStyle(),
		Density: config.DefaultDensity,
		Entries: []config.EntryConfig{
			{Title: "Alpha", Detail: "first"},
			{Title: "Beta"},
			{Title: "Gamma", Detail: "third"},
		},
	})
	require.NoError(t, err)
	return update(t, m, tea.WindowSizeMsg{Width: 40, Height: 8})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_RendersTimeline(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "TIMELINE")
	assert.Contains(t, view, "3/3 entries")

	body := m.grid.String()
	assert.Equal(t, 40, m.grid.Width())
	assert.Equal(t, 6, m.grid.Height())
	assert.Contains(t, body, "Alpha")
	assert.Contains(t, body, "first")
	assert.Contains(t, body, "Beta")
	assert.NotContains(t, body, "Gamma")

	assert.Equal(t, textcanvas.GlyphMarker, m.grid.At(5, 1))
	assert.Equal(t, textcanvas.GlyphMarker, m.grid.At(5, 4))
	assert.Equal(t, 'A', m.grid.At(12, 1))
}

func TestModel_KeysScrollWithinContent(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("j"))
	assert.Equal(t, float32(1), m.Offset())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, key("j"))
	assert.Equal(t, float32(2), m.Offset())

	m.View()
	assert.Contains(t, m.grid.String(), "Gamma")

	m = update(t, m, key("k"))
	assert.Equal(t, float32(1), m.Offset())

	m = update(t, m, key("G"))
	assert.Equal(t, float32(2), m.Offset())
	m = update(t, m, key("g"))
	assert.Equal(t, float32(0), m.Offset())
}

func TestModel_MouseDrag(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 30, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, float32(2), m.Offset(), "offset follows the row delta only")

	next, cmd := m.Update(tea.MouseMsg{X: 30, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = next.(Model)
	assert.False(t, m.scroller.Pressed())

	if cmd != nil {
		m = update(t, m, flingTickMsg{id: m.flingID, at: time.Now().Add(time.Hour)})
		assert.Nil(t, m.fling)
	}
	assert.Equal(t, float32(2), m.Offset())
}

func TestModel_WheelAndStaleFlingTicks(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, float32(2), m.Offset())

	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, float32(0), m.Offset())

	m = update(t, m, flingTickMsg{id: m.flingID + 5, at: time.Now()})
	assert.Equal(t, float32(0), m.Offset())
}

func TestModel_ToggleLastHidesEntry(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, key("G"))
	require.Equal(t, float32(2), m.Offset())

	m = update(t, m, key("x"))
	assert.Equal(t, float32(0), m.Offset(), "content now fits")
	assert.Equal(t, "2/3 entries", m.statusMsg)

	m.View()
	assert.NotContains(t, m.grid.String(), "Gamma")

	m = update(t, m, key("x"))
	assert.Equal(t, "3/3 entries", m.statusMsg)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_Horizontal(t *testing.T) {
	style := config.DefaultStyle()
	style.Orientation = model.OrientationHorizontal
	m, err := NewModel(config.File{
		Title:   "h",
		Style:   style,
		Density: config.DefaultDensity,
		Entries: []config.EntryConfig{{Title: "one"}, {Title: "two"}},
	})
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 16})

	m.View()
	body := m.grid.String()
	lines := strings.Split(body, "\n")
	require.Greater(t, len(lines), 12)
	assert.Contains(t, lines[12], "one")
	assert.Contains(t, lines[12], "two")
	assert.Equal(t, textcanvas.GlyphMarker, m.grid.At(2, 5))
}

func TestNewModel_RejectsInvalidStyle(t *testing.T) {
	style := config.DefaultStyle()
	style.Orientation = model.Orientation(3)

	_, err := NewModel(config.File{Style: style, Density: 1})
	assert.True(t, errors.Is(err, config.ErrUnsupportedOrientation))
}
