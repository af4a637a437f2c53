package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/model"
)

// Sample entries shown on first start
var sampleEntries = []struct{ title, detail string }{
	{"Project started", "Repository created and first layout drawn"},
	{"Geometry", "Measure and arrange along one axis"},
	{"Markers", "Line through the centres, a dot on each"},
	{"Scrolling", "Drag, wheel and fling"},
	{"Settings", "Margins, radius, stroke and colours"},
}

// RootUI is the demo window: a toolbar above a timeline of entry cards
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	timeline *model.Timeline
	cards    []*EntryCard
	view     *TimelineView

	titleEntry  *widget.Entry
	addBtn      *widget.Button
	toggleBtn   *widget.Button
	topBtn      *widget.Button
	statusLabel *widget.Label
	center      *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		timeline:     model.NewTimeline(localization.GetText(KeyAppTitle)),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.seedEntries()
	ui.setupUI()
	return ui
}

// View returns the current timeline view; it is replaced when the style changes
func (ui *RootUI) View() *TimelineView {
	return ui.view
}

// Timeline returns the entries shown in the view
func (ui *RootUI) Timeline() *model.Timeline {
	return ui.timeline
}

func (ui *RootUI) seedEntries() {
	for _, s := range sampleEntries {
		ui.appendEntry(model.NewEntry(s.title, s.detail))
	}
}

func (ui *RootUI) appendEntry(entry *model.Entry) *EntryCard {
	ui.timeline.AddEntry(entry)
	card := NewEntryCard(entry)
	ui.cards = append(ui.cards, card)
	return card
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterTitle))
	ui.titleEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton("", ui.onAddClick)
	ui.toggleBtn = widget.NewButton("", ui.onToggleLast)
	ui.topBtn = widget.NewButton("", ui.onScrollTop)
	ui.setButtonTexts()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		settingsBtn,
		container.NewHBox(ui.addBtn, ui.toggleBtn, ui.topBtn),
		ui.titleEntry,
	)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Importance = widget.LowImportance

	ui.center = container.New(&viewportLayout{extent: ui.mobile.ViewportExtent()})
	ui.applyStyle(ui.settings.GetStyle())

	content := container.NewBorder(topPanel, ui.statusLabel, nil, nil, ui.center)
	ui.window.SetContent(content)

	log.Printf("UI setup completed with %d entries", ui.timeline.Len())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	languageItem := fyne.NewMenuItem(ui.localization.GetText(KeyLanguage), nil)
	languageItem.ChildMenu = languageMenu

	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem, languageItem)
	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterTitle))
	ui.setButtonTexts()
}

func (ui *RootUI) setButtonTexts() {
	ui.addBtn.SetText(IconAdd + " " + ui.localization.GetText(KeyAddEntry))
	ui.toggleBtn.SetText(IconHidden + " " + ui.localization.GetText(KeyToggleLast))
	ui.topBtn.SetText(IconTop + " " + ui.localization.GetText(KeyScrollTop))
}

// applyStyle builds a new view with the style and moves the cards into it.
// An unusable style falls back to the defaults.
func (ui *RootUI) applyStyle(style config.Style) {
	objects := make([]fyne.CanvasObject, 0, len(ui.cards))
	for _, card := range ui.cards {
		objects = append(objects, card)
	}

	view, err := NewTimelineView(style, objects...)
	if err != nil {
		log.Printf("Warning: %v, using default style", err)
		dialog.ShowError(err, ui.window)
		if view, err = NewTimelineView(config.DefaultStyle(), objects...); err != nil {
			log.Printf("Warning: default style rejected: %v", err)
			return
		}
	}

	if ui.view != nil {
		ui.view.stopFling()
	}
	ui.view = view
	ui.center.Objects = []fyne.CanvasObject{view}
	ui.center.Refresh()
	ui.updateStatus()
}

// onAddClick adds an entry from the title field and scrolls to it
func (ui *RootUI) onAddClick() {
	title := strings.TrimSpace(ui.titleEntry.Text)
	if title == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterText))
		return
	}

	card := ui.appendEntry(model.NewEntry(title, ""))
	ui.view.Add(card)
	ui.view.ScrollTo(ui.view.MaxScroll())
	ui.titleEntry.SetText("")

	ui.updateStatus()
	ui.statusLabel.SetText(ui.localization.GetText(KeyEntryAdded) + MiddleDotSeparator + ui.statusLabel.Text)
}

// onToggleLast hides or shows the newest entry
func (ui *RootUI) onToggleLast() {
	if len(ui.cards) == 0 {
		return
	}
	card := ui.cards[len(ui.cards)-1]
	entry := card.Entry()
	ui.timeline.SetHidden(entry.ID, !entry.Hidden)
	card.Sync()
	ui.view.Refresh()
	ui.updateStatus()
}

// onScrollTop scrolls back to the first entry
func (ui *RootUI) onScrollTop() {
	ui.view.ScrollTo(0)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onStyleSaved).Show()
}

func (ui *RootUI) onStyleSaved(style config.Style) {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.applyStyle(style)
}

func (ui *RootUI) updateStatus() {
	visible := len(ui.timeline.GetVisibleEntries())
	if visible == 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoEntries))
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf("%d/%d", visible, ui.timeline.Len()))
}

// viewportLayout gives the timeline the whole cell while asking only for a
// small stacking-axis extent, so long timelines scroll instead of growing the window
type viewportLayout struct {
	extent float32
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (l *viewportLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for _, o := range objects {
		want := o.MinSize()
		if v, ok := o.(*TimelineView); ok && !v.Style().Orientation.IsVertical() {
			want.Width = fyne.Min(want.Width, l.extent)
		} else {
			want.Height = fyne.Min(want.Height, l.extent)
		}
		size = size.Max(want)
	}
	return size
}
