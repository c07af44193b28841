package i18n

import (
	"embed"
	"encoding/json"
	"log"

	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// LanguageSystem selects the language reported by the operating system.
const LanguageSystem = "system"

// Message IDs shared between the UI and the notification dispatcher.
const (
	KeyAppTitle = "app_title"

	KeyPhaseWork       = "phase_work"
	KeyPhaseShortBreak = "phase_short_break"
	KeyPhaseLongBreak  = "phase_long_break"
	KeyPhasePending    = "phase_pending"

	KeyWorkComplete      = "work_complete"
	KeyBreakComplete     = "break_complete"
	KeyLongBreakComplete = "long_break_complete"
	KeyTimeToRelax       = "time_to_relax"
	KeyTimeToFocus       = "time_to_focus"

	KeyStart       = "start"
	KeyPause       = "pause"
	KeyResume      = "resume"
	KeyReset       = "reset"
	KeySkip        = "skip"
	KeyPreferences = "preferences"
	KeyQuit        = "quit"
	KeySave        = "save"
	KeyCancel      = "cancel"
	KeyNextBreakIn = "next_break_in"
)

var localeFiles = []string{
	"locales/en.json",
	"locales/ru.json",
	"locales/de.json",
}

// Translator resolves message IDs for a single language with English
// fallback. A failed lookup returns the message ID itself.
type Translator struct {
	localizer *goi18n.Localizer
	language  string
}

// New creates a Translator. Language "system" (or empty) resolves the
// operating system locale; detection failure falls back to English.
func New(lang string) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: load %s: %v", file, err)
		}
	}

	if lang == "" || lang == LanguageSystem {
		detected, err := locale.GetLocale()
		if err != nil {
			log.Printf("i18n: detect system locale: %v", err)
			detected = "en"
		}
		lang = detected
	}

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, lang, "en"),
		language:  lang,
	}
}

// T returns the translation for the given message ID.
func (translator *Translator) T(id string) string {
	text, err := translator.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return text
}

// Language returns the language tag the translator was built with.
func (translator *Translator) Language() string {
	return translator.language
}

// AvailableLanguages lists selectable languages with display names.
func AvailableLanguages() map[string]string {
	return map[string]string{
		LanguageSystem: "System Default",
		"en":           "English",
		"ru":           "Русский",
		"de":           "Deutsch",
	}
}
