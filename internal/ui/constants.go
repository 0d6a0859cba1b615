package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconUpload   = "🖼"
)

// Window sizing
const (
	WindowMinWidth  float32 = 800
	WindowMinHeight float32 = 600
)

// Preview pane sizing
const (
	UploadPreviewWidth  = 480
	UploadPreviewHeight = 220

	QRPreviewSize = 240

	// Mobile-specific sizing
	MobileUploadPreviewWidth  = 320
	MobileUploadPreviewHeight = 180
	MobileQRPreviewSize       = 150

	// Touch target minimum sizes (iOS/Android guidelines)
	MobileButtonHeight float32 = 48

	LogoSize     float32 = 32
	TextEntryRows        = 3
)

// Pane styling
var (
	PaneBorderColor   = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	UploadBorderColor = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

const (
	PaneBorderWidth   float32 = 1
	UploadBorderWidth float32 = 2
)
