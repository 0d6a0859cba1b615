package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSaveDirectory()
	if dir == "" {
		t.Error("Save directory should not be empty")
	}

	// Default is persisted on first read
	if stored := app.Preferences().String(KeySaveDir); stored != dir {
		t.Errorf("Expected default %s to be stored, got %s", dir, stored)
	}

	// Test setting custom value
	customDir := "/custom/qrcodes"
	settings.SetSaveDirectory(customDir)

	retrievedDir := settings.GetSaveDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, retrievedDir)
	}
}

func TestOpenDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetOpenDirectory(); dir != "" {
		t.Errorf("Expected empty open directory by default, got %s", dir)
	}

	settings.SetOpenDirectory("/photos")
	if dir := settings.GetOpenDirectory(); dir != "/photos" {
		t.Errorf("Expected open directory /photos, got %s", dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}

	// Empty resets to default
	settings.SetLanguage("")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Empty language should reset to %s", DefaultLanguage)
	}
}

func TestRevealAfterSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealAfterSave() != DefaultRevealAfterSave {
		t.Errorf("Expected default reveal-after-save %v", DefaultRevealAfterSave)
	}

	settings.SetRevealAfterSave(true)
	if !settings.GetRevealAfterSave() {
		t.Error("Expected reveal-after-save to be true")
	}
}

func TestScanUploads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetScanUploads() != DefaultScanUploads {
		t.Errorf("Expected default scan-uploads %v", DefaultScanUploads)
	}

	settings.SetScanUploads(false)
	if settings.GetScanUploads() {
		t.Error("Expected scan-uploads to be false")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
