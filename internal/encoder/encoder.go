package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

// Symbol rendering parameters
const (
	// DefaultModuleSize is the edge length of one QR module in pixels
	DefaultModuleSize = 10

	// Border is the quiet zone width in modules; go-qrcode always renders 4
	Border = 4
)

// DefaultLevel is the error correction level used for every generated code
const DefaultLevel = qrcode.High

// ErrEmptyContent is returned when there is nothing to encode
var ErrEmptyContent = errors.New("no content to encode")

var logger = logrus.WithField("component", "encoder")

// QREncoder renders black-on-white QR symbols with a fixed module size
type QREncoder struct {
	Level      qrcode.RecoveryLevel
	ModuleSize int
	Foreground color.Color
	Background color.Color
}

// NewQREncoder creates an encoder with level High and 10px modules
func NewQREncoder() *QREncoder {
	return &QREncoder{
		Level:      DefaultLevel,
		ModuleSize: DefaultModuleSize,
		Foreground: color.Black,
		Background: color.White,
	}
}

// Encode builds a QR symbol for content, picking the smallest version that fits
func (e *QREncoder) Encode(content string) (image.Image, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	q, err := qrcode.New(content, e.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	q.DisableBorder = false
	q.ForegroundColor = e.Foreground
	q.BackgroundColor = e.Background

	moduleSize := e.ModuleSize
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}

	// A negative size makes go-qrcode render each module at -size pixels.
	img := q.Image(-moduleSize)

	logger.WithFields(logrus.Fields{
		"version":     q.VersionNumber,
		"content_len": len(content),
		"pixels":      img.Bounds().Dx(),
	}).Debug("QR symbol encoded")

	return img, nil
}

// SymbolPixels returns the rendered edge length for a symbol version
func SymbolPixels(version, moduleSize int) int {
	modules := 17 + 4*version + 2*Border
	return modules * moduleSize
}
