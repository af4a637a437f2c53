package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAddEntry        = "add_entry"
	KeyToggleLast      = "toggle_last"
	KeyScrollTop       = "scroll_top"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyLeftMargin      = "line_left_margin"
	KeyRightMargin     = "line_right_margin"
	KeyCircleRadius    = "circle_radius"
	KeyStrokeWidth     = "line_stroke_width"
	KeyCircleColor     = "circle_color"
	KeyLineColor       = "line_color"
	KeyOrientation     = "orientation"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyReset           = "reset"
	KeyEnterTitle      = "enter_title"
	KeySettingsSaved   = "settings_saved"
	KeyPleaseEnterText = "please_enter_text"
	KeyEntryAdded      = "entry_added"
	KeyNoEntries       = "no_entries"
	KeyThemeColors     = "theme_colors"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetAvailableLanguages returns language codes mapped to their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Timeline",
		KeyAddEntry:        "Add",
		KeyToggleLast:      "Hide/show last",
		KeyScrollTop:       "Top",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyLeftMargin:      "Line left margin (dp)",
		KeyRightMargin:     "Line right margin (dp)",
		KeyCircleRadius:    "Circle radius (dp)",
		KeyStrokeWidth:     "Line stroke width (dp)",
		KeyCircleColor:     "Circle colour (#AARRGGBB)",
		KeyLineColor:       "Line colour (#AARRGGBB)",
		KeyOrientation:     "Orientation",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyReset:           "Reset to defaults",
		KeyEnterTitle:      "What happened?",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyPleaseEnterText: "Please enter a title",
		KeyEntryAdded:      "Entry added",
		KeyNoEntries:       "No entries yet",
		KeyThemeColors:     "Theme colours",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Хронология",
		KeyAddEntry:        "Добавить",
		KeyToggleLast:      "Скрыть/показать последнюю",
		KeyScrollTop:       "Наверх",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyLeftMargin:      "Отступ линии слева (dp)",
		KeyRightMargin:     "Отступ линии справа (dp)",
		KeyCircleRadius:    "Радиус точки (dp)",
		KeyStrokeWidth:     "Толщина линии (dp)",
		KeyCircleColor:     "Цвет точки (#AARRGGBB)",
		KeyLineColor:       "Цвет линии (#AARRGGBB)",
		KeyOrientation:     "Ориентация",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyReset:           "Сбросить",
		KeyEnterTitle:      "Что произошло?",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyPleaseEnterText: "Пожалуйста, введите заголовок",
		KeyEntryAdded:      "Запись добавлена",
		KeyNoEntries:       "Записей пока нет",
		KeyThemeColors:     "Цвета темы",
	}
}
