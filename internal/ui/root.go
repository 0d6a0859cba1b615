package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/qr-studio/internal/config"
	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/generate"
	"github.com/ytget/qr-studio/internal/imaging"
	"github.com/ytget/qr-studio/internal/model"
	"github.com/ytget/qr-studio/internal/platform"
)

var logger = logrus.WithField("component", "ui")

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	generator    generate.Generator
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// Inputs
	urlEntry  *widget.Entry
	textEntry *widget.Entry

	// Actions
	uploadBtn   *widget.Button
	generateBtn *widget.Button
	saveBtn     *widget.Button
	clearBtn    *widget.Button
	settingsBtn *widget.Button

	// Previews
	uploadPane *PreviewPane
	urlPane    *PreviewPane
	textPane   *PreviewPane
	scanLabel  *widget.Label

	// Section headings, kept for language refresh
	uploadHeading *widget.Label
	urlHeading    *widget.Label
	textHeading   *widget.Label

	// Dialog and OS hooks; tests replace them
	showWarning func(title, message string)
	showInfo    func(title, message string)
	showError   func(err error)
	chooseImage func(onChosen func(path string))
	chooseDir   func(onChosen func(dir string))
	revealDir   func(dir string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, generator generate.Generator) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		generator:    generator,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		revealDir:    platform.RevealInFileManager,
	}
	ui.showWarning = ui.defaultShowMessage
	ui.showInfo = ui.defaultShowMessage
	ui.showError = ui.defaultShowError
	ui.chooseImage = ui.defaultChooseImage
	ui.chooseDir = ui.defaultChooseDir

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for generation updates
	ui.generator.SetUpdateCallback(ui.onGenerationUpdate)

	ui.setupUI()

	logger.WithField("language", localization.GetCurrentLanguage()).Info("RootUI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	// Upload section
	ui.uploadHeading = widget.NewLabel(l.GetText(KeyUploadImage))
	ui.uploadHeading.TextStyle = fyne.TextStyle{Bold: true}
	uploadSize := ui.mobile.UploadPreviewSize()
	ui.uploadPane = NewPreviewPane(l.GetText(KeyUploadPlaceholder),
		fyne.NewSize(float32(uploadSize.Width), float32(uploadSize.Height)), false)
	ui.uploadPane.SetBorder(UploadBorderColor, UploadBorderWidth)
	ui.uploadBtn = widget.NewButton(IconUpload+" "+l.GetText(KeyUploadImage), ui.onUploadClick)
	ui.scanLabel = widget.NewLabel("")
	ui.scanLabel.Truncation = fyne.TextTruncateEllipsis
	ui.scanLabel.Hide()

	// URL section
	ui.urlHeading = widget.NewLabel(l.GetText(KeyEnterURL))
	ui.urlHeading.TextStyle = fyne.TextStyle{Bold: true}
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyURLPlaceholder))
	// Trigger generation when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onGenerateClick()
	}

	// Text section
	ui.textHeading = widget.NewLabel(l.GetText(KeyEnterText))
	ui.textHeading.TextStyle = fyne.TextStyle{Bold: true}
	ui.textEntry = widget.NewMultiLineEntry()
	ui.textEntry.SetPlaceHolder(l.GetText(KeyTextPlaceholder))
	ui.textEntry.SetMinRowsVisible(TextEntryRows)

	// QR previews
	qrSize := ui.mobile.QRPreviewSize()
	paneSize := fyne.NewSize(float32(qrSize.Width), float32(qrSize.Height))
	ui.urlPane = NewPreviewPane(l.GetText(KeyURLPanePlaceholder), paneSize, true)
	ui.textPane = NewPreviewPane(l.GetText(KeyTextPanePlaceholder), paneSize, true)
	qrRow := ui.mobile.CreateAdaptiveContainer(2, ui.urlPane, ui.textPane)

	// Buttons
	ui.generateBtn = widget.NewButton(l.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance
	ui.saveBtn = widget.NewButton(l.GetText(KeySaveCodes), ui.onSaveClick)
	ui.saveBtn.Importance = widget.HighImportance
	ui.saveBtn.Disable()
	ui.clearBtn = widget.NewButton(l.GetText(KeyClear), ui.onClearClick)
	buttonRow := container.NewGridWithColumns(3,
		ui.mobile.WrapButton(ui.generateBtn),
		ui.mobile.WrapButton(ui.saveBtn),
		ui.mobile.WrapButton(ui.clearBtn),
	)

	// Top bar with logo and settings
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	topBar := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		ui.window.SetIcon(logo)
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		topBar = container.NewHBox(logoImage, ui.settingsBtn)
	} else {
		logger.WithError(err).Warn("Logo unavailable")
	}

	body := container.NewVBox(
		ui.uploadHeading,
		ui.uploadPane,
		ui.uploadBtn,
		ui.scanLabel,
		ui.urlHeading,
		ui.urlEntry,
		ui.textHeading,
		ui.textEntry,
		qrRow,
		buttonRow,
	)

	content := container.NewBorder(
		topBar,                     // top
		nil,                        // bottom
		nil,                        // left
		nil,                        // right
		container.NewVScroll(body), // center
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		ui.onDropped(uris)
	})
	logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.uploadHeading.SetText(l.GetText(KeyUploadImage))
	ui.urlHeading.SetText(l.GetText(KeyEnterURL))
	ui.textHeading.SetText(l.GetText(KeyEnterText))

	ui.urlEntry.SetPlaceHolder(l.GetText(KeyURLPlaceholder))
	ui.textEntry.SetPlaceHolder(l.GetText(KeyTextPlaceholder))

	ui.uploadBtn.SetText(IconUpload + " " + l.GetText(KeyUploadImage))
	ui.generateBtn.SetText(l.GetText(KeyGenerate))
	ui.saveBtn.SetText(l.GetText(KeySaveCodes))
	ui.clearBtn.SetText(l.GetText(KeyClear))

	ui.uploadPane.SetPlaceholder(l.GetText(KeyUploadPlaceholder))
	ui.urlPane.SetPlaceholder(l.GetText(KeyURLPanePlaceholder))
	ui.textPane.SetPlaceholder(l.GetText(KeyTextPanePlaceholder))

	// Re-render "no input" messages in the new language
	ui.onGenerationUpdate(ui.generator.Current())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}

// onUploadClick handles the upload button click
func (ui *RootUI) onUploadClick() {
	ui.chooseImage(ui.loadUpload)
}

// onDropped previews the first dropped file with a supported image extension
func (ui *RootUI) onDropped(uris []fyne.URI) {
	for _, uri := range uris {
		if uri.Scheme() != "file" || !imaging.IsSupported(uri.Path()) {
			continue
		}
		ui.loadUpload(uri.Path())
		return
	}
	logger.WithField("count", len(uris)).Debug("No supported image among dropped files")
}

// loadUpload previews the image at path; a decode failure keeps the previous preview
func (ui *RootUI) loadUpload(path string) {
	if path == "" {
		return
	}

	preview, err := imaging.LoadImagePreview(path, ui.mobile.UploadPreviewSize())
	if err != nil {
		logger.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Error("Failed to load uploaded image")
		ui.showError(err)
		return
	}

	ui.uploadPane.SetImage(preview)
	ui.settings.SetOpenDirectory(filepath.Dir(path))
	logger.WithField("path", path).Info("Uploaded image previewed")

	ui.scanUpload(path)
}

// scanUpload shows the text of a QR code found in the uploaded image, if scanning is enabled
func (ui *RootUI) scanUpload(path string) {
	ui.scanLabel.SetText("")
	ui.scanLabel.Hide()

	if !ui.settings.GetScanUploads() {
		return
	}

	img, _, err := imaging.Load(path)
	if err != nil {
		return
	}

	text, err := encoder.Decode(img)
	if err != nil {
		logger.WithField("path", path).Debug("No QR code in uploaded image")
		return
	}

	ui.scanLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyDetectedQR), text))
	ui.scanLabel.Show()
}

// onGenerateClick handles the generate button click
func (ui *RootUI) onGenerateClick() {
	_, err := ui.generator.Generate(ui.urlEntry.Text, ui.textEntry.Text)
	if errors.Is(err, generate.ErrNoInput) {
		ui.showWarning(ui.localization.GetText(KeyInputErrorTitle), ui.localization.GetText(KeyInputErrorMessage))
		return
	}
	if err != nil {
		ui.showError(err)
		return
	}
}

// onGenerationUpdate refreshes the QR panes and save button from gen
func (ui *RootUI) onGenerationUpdate(gen *model.Generation) {
	l := ui.localization

	panes := map[model.Slot]*PreviewPane{
		model.SlotURL:  ui.urlPane,
		model.SlotText: ui.textPane,
	}
	emptyMessages := map[model.Slot]string{
		model.SlotURL:  l.GetText(KeyNoURL),
		model.SlotText: l.GetText(KeyNoText),
	}

	for _, slot := range model.Slots() {
		pane := panes[slot]
		switch {
		case gen == nil:
			pane.Reset()
		case gen.Has(slot):
			pane.SetImage(imaging.ToDisplay(gen.Image(slot)))
		default:
			pane.ShowMessage(emptyMessages[slot])
		}
	}

	if ui.generator.State().CanSave() {
		ui.saveBtn.Enable()
	} else {
		ui.saveBtn.Disable()
	}
}

// onSaveClick handles the save button click
func (ui *RootUI) onSaveClick() {
	if !ui.generator.HasImages() {
		ui.showWarning(ui.localization.GetText(KeySaveErrorTitle), ui.localization.GetText(KeyNothingToSave))
		return
	}
	ui.chooseDir(ui.saveTo)
}

// saveTo writes the generated codes into dir and confirms
func (ui *RootUI) saveTo(dir string) {
	if dir == "" {
		return
	}

	paths, err := ui.generator.Save(dir)
	if errors.Is(err, generate.ErrNothingToSave) {
		ui.showWarning(ui.localization.GetText(KeySaveErrorTitle), ui.localization.GetText(KeyNothingToSave))
		return
	}
	if err != nil {
		ui.showError(err)
		return
	}

	ui.settings.SetSaveDirectory(dir)
	logger.WithFields(logrus.Fields{
		"dir":   dir,
		"files": len(paths),
	}).Info("QR codes saved from UI")

	ui.showInfo(ui.localization.GetText(KeySavedTitle), fmt.Sprintf(ui.localization.GetText(KeySavedMessage), dir))

	if ui.settings.GetRevealAfterSave() {
		if err := ui.revealDir(dir); err != nil {
			logger.WithError(err).Warn(ui.localization.GetText(KeyErrorRevealingFolder))
		}
	}
}

// onClearClick empties the inputs and discards generated codes
func (ui *RootUI) onClearClick() {
	ui.urlEntry.SetText("")
	ui.textEntry.SetText("")
	ui.generator.Reset()
}

// defaultShowMessage shows a blocking message dialog
func (ui *RootUI) defaultShowMessage(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

// defaultShowError shows a blocking error dialog
func (ui *RootUI) defaultShowError(err error) {
	dialog.ShowError(err, ui.window)
}

// defaultChooseImage opens a file picker limited to supported image formats
func (ui *RootUI) defaultChooseImage(onChosen func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(imaging.SupportedExtensions()))
	setDialogLocation(fd, ui.settings.GetOpenDirectory())
	fd.Show()
}

// defaultChooseDir opens a folder picker starting at the configured save directory
func (ui *RootUI) defaultChooseDir(onChosen func(dir string)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return // cancelled
		}
		onChosen(uri.Path())
	}, ui.window)

	setDialogLocation(fd, ui.settings.GetSaveDirectory())
	fd.Show()
}

// setDialogLocation points fd at dir when dir is an existing directory
func setDialogLocation(fd *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}
