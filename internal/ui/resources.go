package ui

import (
	"bytes"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/imaging"
)

const (
	AppIcon = "qr-studio.png"

	// logoContent is what the generated application icon encodes
	logoContent = "QR Studio"

	// logoPixels is the edge length of the rendered icon
	logoPixels = 256
)

// LoadLogoResource renders the application icon as a QR code of the app name
func LoadLogoResource() (fyne.Resource, error) {
	img, err := encoder.NewQREncoder().Encode(logoContent)
	if err != nil {
		return nil, fmt.Errorf("failed to render logo: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.EncodePNG(&buf, imaging.FitSharp(img, imaging.NewSize(logoPixels, logoPixels))); err != nil {
		return nil, err
	}

	return fyne.NewStaticResource(AppIcon, buf.Bytes()), nil
}
