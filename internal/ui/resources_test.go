package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ytget/qr-studio/internal/encoder"
)

func TestLoadLogoResource(t *testing.T) {
	res, err := LoadLogoResource()
	if err != nil {
		t.Fatalf("LoadLogoResource returned error: %v", err)
	}
	if res.Name() != AppIcon {
		t.Errorf("Expected resource name %s, got %s", AppIcon, res.Name())
	}

	img, err := png.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		t.Fatalf("Logo is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != logoPixels || b.Dy() != logoPixels {
		t.Errorf("Expected %dx%d logo, got %dx%d", logoPixels, logoPixels, b.Dx(), b.Dy())
	}

	text, err := encoder.Decode(img)
	if err != nil {
		t.Fatalf("Logo does not decode: %v", err)
	}
	if text != logoContent {
		t.Errorf("Expected logo to encode %q, got %q", logoContent, text)
	}
}
