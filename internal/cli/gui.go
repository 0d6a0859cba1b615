package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/qr-studio/internal/generate"
	"github.com/ytget/qr-studio/internal/ui"
)

const (
	AppID   = "com.ytget.qr-studio"
	AppName = "QR Studio"

	WindowWidth  = ui.WindowMinWidth
	WindowHeight = ui.WindowMinHeight
)

// runGUI opens the main window and blocks until it is closed
func runGUI(version string) error {
	logger.WithField("version", version).Infof("%s starting", AppName)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, generate.NewService(nil))

	// Show and run
	myWindow.ShowAndRun()
	return nil
}
