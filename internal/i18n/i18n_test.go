package i18n

import "testing"

func TestTranslatorKnownLanguage(t *testing.T) {
	translator := New("ru")

	if got := translator.T(KeyPause); got != "Пауза" {
		t.Errorf("T(%s) in ru = %q", KeyPause, got)
	}
	if translator.Language() != "ru" {
		t.Errorf("Language() = %s", translator.Language())
	}
}

func TestTranslatorFallsBackToEnglish(t *testing.T) {
	translator := New("fr")

	if got := translator.T(KeyStart); got != "Start" {
		t.Errorf("T(%s) in unsupported language = %q, expected English fallback", KeyStart, got)
	}
}

func TestTranslatorUnknownIDReturnsID(t *testing.T) {
	translator := New("en")

	if got := translator.T("no_such_message"); got != "no_such_message" {
		t.Errorf("unknown message ID resolved to %q", got)
	}
}

func TestAvailableLanguagesCoverEmbeddedLocales(t *testing.T) {
	languages := AvailableLanguages()
	for _, lang := range []string{LanguageSystem, "en", "ru", "de"} {
		if _, ok := languages[lang]; !ok {
			t.Errorf("language %s missing from AvailableLanguages", lang)
		}
	}
}
