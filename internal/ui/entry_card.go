package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timelineview/internal/model"
)

// EntryCard shows one timeline entry: time and title on the first line, detail below
type EntryCard struct {
	widget.BaseWidget

	entry *model.Entry

	timeLabel   *widget.Label
	titleLabel  *widget.Label
	detailLabel *widget.Label
}

// NewEntryCard creates a card for the entry
func NewEntryCard(entry *model.Entry) *EntryCard {
	if entry == nil {
		log.Printf("Warning: NewEntryCard called with nil entry")
		entry = &model.Entry{ID: "placeholder"}
	}

	c := &EntryCard{entry: entry}
	c.ExtendBaseWidget(c)
	c.createUI()
	c.updateFromEntry()
	return c
}

// Entry returns the entry shown by the card
func (c *EntryCard) Entry() *model.Entry {
	return c.entry
}

// Sync re-reads the current entry, used after the entry was changed in place
func (c *EntryCard) Sync() {
	c.updateFromEntry()
	c.Refresh()
}

func (c *EntryCard) createUI() {
	c.timeLabel = widget.NewLabel("")
	c.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	c.titleLabel = widget.NewLabel("")
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis

	c.detailLabel = widget.NewLabel("")
	c.detailLabel.Importance = widget.LowImportance
	c.detailLabel.Truncation = fyne.TextTruncateEllipsis
}

func (c *EntryCard) updateFromEntry() {
	c.timeLabel.SetText(c.entry.GetTimeString())
	c.titleLabel.SetText(c.entry.GetDisplayTitle())
	c.detailLabel.SetText(c.entry.Detail)

	if c.entry.Detail == "" {
		c.detailLabel.Hide()
	} else {
		c.detailLabel.Show()
	}

	// Hidden entries leave the timeline entirely
	if c.entry.Hidden {
		c.Hide()
	} else {
		c.Show()
	}
}

// CreateRenderer creates the widget renderer
func (c *EntryCard) CreateRenderer() fyne.WidgetRenderer {
	return &entryCardRenderer{card: c}
}

// entryCardRenderer lays the labels out in a compact block with a bounded width
type entryCardRenderer struct {
	card   *EntryCard
	layout *fyne.Container
}

func (r *entryCardRenderer) Layout(size fyne.Size) {
	r.ensureLayout()
	r.layout.Resize(size)
}

func (r *entryCardRenderer) MinSize() fyne.Size {
	r.ensureLayout()
	size := r.layout.MinSize()
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	if size.Width > CardMaxWidth {
		size.Width = CardMaxWidth
	}
	if size.Height < CardMinHeight {
		size.Height = CardMinHeight
	}
	return size
}

func (r *entryCardRenderer) Refresh() {
	r.ensureLayout()
	r.layout.Refresh()
}

func (r *entryCardRenderer) Objects() []fyne.CanvasObject {
	r.ensureLayout()
	return []fyne.CanvasObject{r.layout}
}

func (r *entryCardRenderer) Destroy() {}

func (r *entryCardRenderer) ensureLayout() {
	if r.layout != nil {
		return
	}
	c := r.card
	header := container.NewBorder(nil, nil, c.timeLabel, nil, c.titleLabel)
	r.layout = container.NewVBox(header, c.detailLabel)
}
