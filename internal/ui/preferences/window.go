package preferences

import (
	"fmt"
	"strconv"
	"time"

	"gomodoro/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// languageOrder fixes the order of the language selector.
var languageOrder = []string{i18n.LanguageSystem, "en", "ru", "de"}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	workEntry     *widget.Entry
	shortEntry    *widget.Entry
	longEntry     *widget.Entry
	sessionsEntry *widget.Entry
	autoBreaks    *widget.Check
	autoWork      *widget.Check
	notifications *widget.Check
	sound         *widget.Check
	soundFile     *widget.Entry
	language      *widget.Select
	autostart     *widget.Check
}

// New creates a preferences window. Saved settings are passed to onSave;
// cancelling keeps the previous values.
func New(app fyne.App, translator *i18n.Translator, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow(translator.T(i18n.KeyPreferences))

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,
	}

	prefs.workEntry = widget.NewEntry()
	prefs.shortEntry = widget.NewEntry()
	prefs.longEntry = widget.NewEntry()
	prefs.sessionsEntry = widget.NewEntry()

	prefs.autoBreaks = widget.NewCheck("Auto-start breaks", nil)
	prefs.autoWork = widget.NewCheck("Auto-start work", nil)
	prefs.notifications = widget.NewCheck("Desktop notifications", nil)
	prefs.sound = widget.NewCheck("Notification sound", nil)
	prefs.soundFile = widget.NewEntry()
	prefs.soundFile.SetPlaceHolder("path to .wav or .mp3")
	prefs.autostart = widget.NewCheck("Launch at login", nil)

	names := i18n.AvailableLanguages()
	options := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		options = append(options, names[code])
	}
	prefs.language = widget.NewSelect(options, nil)

	prefs.applySettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Schedule", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus length"), prefs.workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Sessions per long break"), prefs.sessionsEntry),
		prefs.autoBreaks,
		prefs.autoWork,
		widget.NewLabelWithStyle("Notifications", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.notifications,
		prefs.sound,
		container.NewHBox(widget.NewLabel("Sound file"), prefs.soundFile),
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Language"), prefs.language),
		prefs.autostart,
	)

	saveButton := widget.NewButton(translator.T(i18n.KeySave), prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton(translator.T(i18n.KeyCancel), func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	fyne.Do(func() {
		prefs.window.Show()
		prefs.window.RequestFocus()
	})
}

// UpdateSettings replaces window values, e.g. after a settings file
// change on disk.
func (prefs *Window) UpdateSettings(settings Settings) {
	fyne.Do(func() {
		prefs.settings = settings
		prefs.applySettings(settings)
	})
}

func (prefs *Window) applySettings(settings Settings) {
	prefs.workEntry.SetText(fmt.Sprintf("%d", int(settings.WorkDuration.Minutes())))
	prefs.shortEntry.SetText(fmt.Sprintf("%d", int(settings.ShortBreak.Minutes())))
	prefs.longEntry.SetText(fmt.Sprintf("%d", int(settings.LongBreak.Minutes())))
	prefs.sessionsEntry.SetText(fmt.Sprintf("%d", settings.SessionsPerLongBreak))
	prefs.autoBreaks.SetChecked(settings.AutoStartBreaks)
	prefs.autoWork.SetChecked(settings.AutoStartWork)
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.soundFile.SetText(settings.SoundFile)
	prefs.autostart.SetChecked(settings.AutostartLogin)

	names := i18n.AvailableLanguages()
	display, ok := names[settings.Language]
	if !ok {
		display = names[i18n.LanguageSystem]
	}
	prefs.language.SetSelected(display)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workEntry.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortEntry.Text); ok {
		settings.ShortBreak = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longEntry.Text); ok {
		settings.LongBreak = time.Duration(minutes) * time.Minute
	}
	if sessions, ok := parsePositiveInt(prefs.sessionsEntry.Text); ok {
		settings.SessionsPerLongBreak = sessions
	}

	settings.AutoStartBreaks = prefs.autoBreaks.Checked
	settings.AutoStartWork = prefs.autoWork.Checked
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.SoundEnabled = prefs.sound.Checked
	settings.SoundFile = prefs.soundFile.Text
	settings.AutostartLogin = prefs.autostart.Checked
	settings.Language = prefs.selectedLanguage()

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) selectedLanguage() string {
	names := i18n.AvailableLanguages()
	for _, code := range languageOrder {
		if names[code] == prefs.language.Selected {
			return code
		}
	}
	return i18n.LanguageSystem
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
