package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/model"
)

// SettingsDialog edits the stored timeline style. The view itself has no
// setters, so a saved style is handed to onSaved to build a new view.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(config.Style)

	// UI components
	leftMarginEntry   *widget.Entry
	rightMarginEntry  *widget.Entry
	circleRadiusEntry *widget.Entry
	strokeWidthEntry  *widget.Entry
	circleColorEntry  *widget.Entry
	lineColorEntry    *widget.Entry
	orientationSelect *widget.Select
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(config.Style)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadStyle(sd.settings.GetStyle())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.leftMarginEntry = widget.NewEntry()
	sd.rightMarginEntry = widget.NewEntry()
	sd.circleRadiusEntry = widget.NewEntry()
	sd.strokeWidthEntry = widget.NewEntry()
	sd.circleColorEntry = widget.NewEntry()
	sd.circleColorEntry.SetPlaceHolder("#ff000000")
	sd.lineColorEntry = widget.NewEntry()
	sd.lineColorEntry.SetPlaceHolder("#ff000000")

	sd.orientationSelect = widget.NewSelect([]string{
		model.OrientationVertical.String(),
		model.OrientationHorizontal.String(),
	}, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	resetBtn := widget.NewButton(t(KeyReset), func() {
		sd.loadStyle(config.DefaultStyle())
	})
	themeBtn := widget.NewButton(t(KeyThemeColors), func() {
		style, err := sd.readStyle()
		if err != nil {
			style = config.DefaultStyle()
		}
		sd.loadStyle(ThemeColors(style))
	})

	form := widget.NewForm(
		widget.NewFormItem(t(KeyLeftMargin), sd.leftMarginEntry),
		widget.NewFormItem(t(KeyRightMargin), sd.rightMarginEntry),
		widget.NewFormItem(t(KeyCircleRadius), sd.circleRadiusEntry),
		widget.NewFormItem(t(KeyStrokeWidth), sd.strokeWidthEntry),
		widget.NewFormItem(t(KeyCircleColor), sd.circleColorEntry),
		widget.NewFormItem(t(KeyLineColor), sd.lineColorEntry),
		widget.NewFormItem(t(KeyOrientation), sd.orientationSelect),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(form, container.NewHBox(resetBtn, themeBtn))

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadStyle fills the form from a style
func (sd *SettingsDialog) loadStyle(style config.Style) {
	sd.leftMarginEntry.SetText(formatDP(style.LineLeftMargin))
	sd.rightMarginEntry.SetText(formatDP(style.LineRightMargin))
	sd.circleRadiusEntry.SetText(formatDP(style.CircleRadius))
	sd.strokeWidthEntry.SetText(formatDP(style.LineStrokeWidth))
	sd.circleColorEntry.SetText(style.CircleColor.Hex())
	sd.lineColorEntry.SetText(style.LineColor.Hex())
	sd.orientationSelect.SetSelected(style.Orientation.String())
}

// readStyle parses the form into a validated style
func (sd *SettingsDialog) readStyle() (config.Style, error) {
	var style config.Style
	var err error

	dims := []struct {
		key   string
		entry *widget.Entry
		dst   *float32
	}{
		{config.KeyLineLeftMargin, sd.leftMarginEntry, &style.LineLeftMargin},
		{config.KeyLineRightMargin, sd.rightMarginEntry, &style.LineRightMargin},
		{config.KeyCircleRadius, sd.circleRadiusEntry, &style.CircleRadius},
		{config.KeyLineStrokeWidth, sd.strokeWidthEntry, &style.LineStrokeWidth},
	}
	for _, d := range dims {
		value, perr := strconv.ParseFloat(d.entry.Text, 32)
		if perr != nil {
			return config.Style{}, fmt.Errorf("%w: %s: %v", config.ErrInvalidStyle, d.key, perr)
		}
		*d.dst = float32(value)
	}

	if style.CircleColor, err = config.ParseARGB(sd.circleColorEntry.Text); err != nil {
		return config.Style{}, err
	}
	if style.LineColor, err = config.ParseARGB(sd.lineColorEntry.Text); err != nil {
		return config.Style{}, err
	}
	if style.Orientation, err = model.ParseOrientation(sd.orientationSelect.Selected); err != nil {
		return config.Style{}, fmt.Errorf("%w: %v", config.ErrUnsupportedOrientation, err)
	}

	if err := style.Validate(); err != nil {
		return config.Style{}, err
	}
	return style, nil
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	style, err := sd.readStyle()
	if err != nil {
		dialog.ShowError(err, sd.window)
		return
	}
	if err := sd.settings.SetStyle(style); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved(sd.settings.GetStyle())
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

func formatDP(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
