package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyUploadImage          = "upload_image"
	KeyUploadPlaceholder    = "upload_placeholder"
	KeyEnterURL             = "enter_url"
	KeyURLPlaceholder       = "url_placeholder"
	KeyEnterText            = "enter_text"
	KeyTextPlaceholder      = "text_placeholder"
	KeyGenerate             = "generate"
	KeySaveCodes            = "save_codes"
	KeyClear                = "clear"
	KeyURLPanePlaceholder   = "url_pane_placeholder"
	KeyTextPanePlaceholder  = "text_pane_placeholder"
	KeyNoURL                = "no_url"
	KeyNoText               = "no_text"
	KeyInputErrorTitle      = "input_error_title"
	KeyInputErrorMessage    = "input_error_message"
	KeySaveErrorTitle       = "save_error_title"
	KeyNothingToSave        = "nothing_to_save"
	KeySavedTitle           = "saved_title"
	KeySavedMessage         = "saved_message"
	KeyDetectedQR           = "detected_qr"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeySaveDirectory        = "save_directory"
	KeyRevealAfterSave      = "reveal_after_save"
	KeyScanUploads          = "scan_uploads"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyBrowse               = "browse"
	KeySettingsSaved        = "settings_saved"
	KeyErrorRevealingFolder = "error_revealing_folder"
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "QR Studio",
		KeyUploadImage:          "Upload Image",
		KeyUploadPlaceholder:    "Uploaded image will appear here",
		KeyEnterURL:             "Enter URL",
		KeyURLPlaceholder:       "Enter URL here",
		KeyEnterText:            "Enter Text",
		KeyTextPlaceholder:      "Enter text here",
		KeyGenerate:             "Generate QR Codes",
		KeySaveCodes:            "Save QR Codes",
		KeyClear:                "Clear",
		KeyURLPanePlaceholder:   "QR Code for URL will appear here",
		KeyTextPanePlaceholder:  "QR Code for Text will appear here",
		KeyNoURL:                "No URL provided",
		KeyNoText:               "No text provided",
		KeyInputErrorTitle:      "Input Error",
		KeyInputErrorMessage:    "Please enter a URL or text to generate QR codes.",
		KeySaveErrorTitle:       "Save Error",
		KeyNothingToSave:        "No QR codes to save.",
		KeySavedTitle:           "Saved",
		KeySavedMessage:         "QR codes saved successfully in %s",
		KeyDetectedQR:           "QR code in image: %s",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeySaveDirectory:        "Default Save Directory",
		KeyRevealAfterSave:      "Open folder after saving",
		KeyScanUploads:          "Scan uploaded images for QR codes",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyBrowse:               "Browse",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyErrorRevealingFolder: "Error opening folder",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "QR Студия",
		KeyUploadImage:          "Загрузить изображение",
		KeyUploadPlaceholder:    "Здесь появится загруженное изображение",
		KeyEnterURL:             "Введите URL",
		KeyURLPlaceholder:       "Введите URL здесь",
		KeyEnterText:            "Введите текст",
		KeyTextPlaceholder:      "Введите текст здесь",
		KeyGenerate:             "Создать QR-коды",
		KeySaveCodes:            "Сохранить QR-коды",
		KeyClear:                "Очистить",
		KeyURLPanePlaceholder:   "Здесь появится QR-код для URL",
		KeyTextPanePlaceholder:  "Здесь появится QR-код для текста",
		KeyNoURL:                "URL не указан",
		KeyNoText:               "Текст не указан",
		KeyInputErrorTitle:      "Ошибка ввода",
		KeyInputErrorMessage:    "Введите URL или текст для создания QR-кодов.",
		KeySaveErrorTitle:       "Ошибка сохранения",
		KeyNothingToSave:        "Нет QR-кодов для сохранения.",
		KeySavedTitle:           "Сохранено",
		KeySavedMessage:         "QR-коды успешно сохранены в %s",
		KeyDetectedQR:           "QR-код на изображении: %s",
		KeySettings:             "Настройки",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeySaveDirectory:        "Папка сохранения по умолчанию",
		KeyRevealAfterSave:      "Открывать папку после сохранения",
		KeyScanUploads:          "Искать QR-коды в загруженных изображениях",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeyBrowse:               "Обзор",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyErrorRevealingFolder: "Ошибка открытия папки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "QR Studio",
		KeyUploadImage:          "Carregar Imagem",
		KeyUploadPlaceholder:    "A imagem carregada aparecerá aqui",
		KeyEnterURL:             "Digite a URL",
		KeyURLPlaceholder:       "Digite a URL aqui",
		KeyEnterText:            "Digite o Texto",
		KeyTextPlaceholder:      "Digite o texto aqui",
		KeyGenerate:             "Gerar Códigos QR",
		KeySaveCodes:            "Salvar Códigos QR",
		KeyClear:                "Limpar",
		KeyURLPanePlaceholder:   "O código QR da URL aparecerá aqui",
		KeyTextPanePlaceholder:  "O código QR do texto aparecerá aqui",
		KeyNoURL:                "Nenhuma URL informada",
		KeyNoText:               "Nenhum texto informado",
		KeyInputErrorTitle:      "Erro de Entrada",
		KeyInputErrorMessage:    "Digite uma URL ou texto para gerar códigos QR.",
		KeySaveErrorTitle:       "Erro ao Salvar",
		KeyNothingToSave:        "Nenhum código QR para salvar.",
		KeySavedTitle:           "Salvo",
		KeySavedMessage:         "Códigos QR salvos com sucesso em %s",
		KeyDetectedQR:           "Código QR na imagem: %s",
		KeySettings:             "Configurações",
		KeyFile:                 "Arquivo",
		KeyLanguage:             "Idioma",
		KeySaveDirectory:        "Diretório Padrão para Salvar",
		KeyRevealAfterSave:      "Abrir pasta após salvar",
		KeyScanUploads:          "Procurar códigos QR nas imagens carregadas",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeyBrowse:               "Navegar",
		KeySettingsSaved:        "Configurações salvas com sucesso!",
		KeyErrorRevealingFolder: "Erro ao abrir pasta",
	}
}
