package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qr-studio/internal/imaging"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}

// CreateAdaptiveContainer creates a container that stacks on portrait phones and sits side by side otherwise
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(columns, objects...)
}

// WrapButton gives btn a touch-friendly minimum height on mobile
func (m *MobileUI) WrapButton(btn *widget.Button) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return btn
	}
	return container.NewGridWrap(fyne.NewSize(btn.MinSize().Width, MobileButtonHeight), btn)
}

// UploadPreviewSize returns the pixel box the uploaded image is scaled into
func (m *MobileUI) UploadPreviewSize() imaging.Size {
	if m.IsMobileDevice() {
		return imaging.NewSize(MobileUploadPreviewWidth, MobileUploadPreviewHeight)
	}
	return imaging.NewSize(UploadPreviewWidth, UploadPreviewHeight)
}

// QRPreviewSize returns the pixel box generated codes are scaled into
func (m *MobileUI) QRPreviewSize() imaging.Size {
	if m.IsMobileDevice() {
		return imaging.NewSize(MobileQRPreviewSize, MobileQRPreviewSize)
	}
	return imaging.NewSize(QRPreviewSize, QRPreviewSize)
}
