package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/ytget/qr-studio/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySaveDir         = "save_directory"
	KeyOpenDir         = "open_directory"
	KeyLanguage        = "app_language"
	KeyRevealAfterSave = "reveal_after_save"
	KeyScanUploads     = "scan_uploads"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultRevealAfterSave = false
	DefaultScanUploads     = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSaveDirectory returns the directory offered when saving QR codes
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		defaultDir := defaultSaveDirectory()
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the save directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetOpenDirectory returns the directory the last image was uploaded from, or ""
func (s *Settings) GetOpenDirectory() string {
	return s.app.Preferences().String(KeyOpenDir)
}

// SetOpenDirectory remembers the directory of the last uploaded image
func (s *Settings) SetOpenDirectory(dir string) {
	s.app.Preferences().SetString(KeyOpenDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealAfterSave returns whether to open the target folder after saving
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether to open the target folder after saving
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetScanUploads returns whether uploaded images are scanned for QR codes
func (s *Settings) GetScanUploads() bool {
	return s.app.Preferences().BoolWithFallback(KeyScanUploads, DefaultScanUploads)
}

// SetScanUploads sets whether uploaded images are scanned for QR codes
func (s *Settings) SetScanUploads(scan bool) {
	s.app.Preferences().SetBool(KeyScanUploads, scan)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// defaultSaveDirectory prefers the user's Pictures folder and falls back to the working directory
func defaultSaveDirectory() string {
	if dir, err := platform.GetHomePicturesDir(); err == nil {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
