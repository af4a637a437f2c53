package textcanvas

import (
	"image/color"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/timeline"
)

var black = timeline.Paint{Color: color.NRGBA{A: 255}, StrokeWidth: 1}

func TestGrid_VerticalLine(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawLine(fyne.NewPos(2, 0), fyne.NewPos(2, 4), black)

	for y := 0; y < 5; y++ {
		assert.Equal(t, GlyphVertical, g.At(2, y), "row %d", y)
	}
	assert.Equal(t, GlyphBlank, g.At(1, 2))
}

func TestGrid_HorizontalAndThinLines(t *testing.T) {
	g := NewGrid(6, 3)
	g.DrawLine(fyne.NewPos(0, 1), fyne.NewPos(5, 1), black)
	assert.Equal(t, "──────", strings.Split(g.String(), "\n")[1])

	g.Clear()
	g.DrawLine(fyne.NewPos(0, 1), fyne.NewPos(5, 1), timeline.Paint{StrokeWidth: 0.25})
	assert.Equal(t, strings.Repeat(" ", 6), strings.Split(g.String(), "\n")[1], "sub-cell strokes are skipped")
}

func TestGrid_Circle(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawCircle(fyne.NewPos(2, 2), 1, black)

	assert.Equal(t, GlyphMarker, g.At(2, 2))
	assert.Equal(t, GlyphMarker, g.At(1, 2))
	assert.Equal(t, GlyphMarker, g.At(2, 3))
	assert.Equal(t, GlyphBlank, g.At(1, 1), "corners are outside the radius")

	g.Clear()
	g.DrawCircle(fyne.NewPos(0.5, 4.9), 0.2, black)
	assert.Equal(t, GlyphMarker, g.At(0, 4))
}

func TestGrid_ClipsOutside(t *testing.T) {
	g := NewGrid(3, 3)
	g.DrawLine(fyne.NewPos(1, -10), fyne.NewPos(1, 10), black)
	g.Put(2, 0, "long text", "")
	g.DrawCircle(fyne.NewPos(-5, -5), 1, black)

	assert.Equal(t, " │l\n │ \n │ ", g.String())
	assert.Equal(t, GlyphBlank, g.At(-1, 0))
	assert.Equal(t, GlyphBlank, g.At(3, 3))
}

func TestGrid_DrawsTimeline(t *testing.T) {
	style := config.DefaultStyle()
	geo, err := timeline.NewGeometry(style.Resolve(0.25))
	require.NoError(t, err)

	blocks := []timeline.Child{
		timeline.NewBlock("a", 4, 2),
		timeline.NewBlock("b", 4, 8),
	}
	size := geo.Measure(blocks, timeline.Unbounded(), timeline.Unbounded())
	geo.Arrange(blocks, 0)

	g := NewGrid(int(size.Width), int(size.Height))
	geo.Draw(g, blocks)

	// left margin 5 cells, points at rows 1 and 6, markers one cell wide
	assert.Equal(t, 16, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, GlyphMarker, g.At(5, 1))
	assert.Equal(t, GlyphMarker, g.At(5, 6))
	assert.Equal(t, GlyphVertical, g.At(5, 3))
	assert.Equal(t, GlyphVertical, g.At(5, 4))
	assert.Equal(t, GlyphBlank, g.At(5, 8))
}

func TestGrid_Render(t *testing.T) {
	g := NewGrid(3, 1)
	g.Put(0, 0, "abc", "")
	assert.Equal(t, "abc", g.Render())

	g.DrawCircle(fyne.NewPos(1, 0), 0, timeline.Paint{Color: color.NRGBA{R: 255, A: 255}})
	assert.Contains(t, g.Render(), "●")
}

func TestGrid_Resize(t *testing.T) {
	g := NewGrid(2, 2)
	g.Put(0, 0, "ab", "")

	g.Resize(4, 1)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, "    ", g.String())

	g.Resize(-1, 3)
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, "\n\n", g.String())
}
