package imaging

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// File permissions for written images
const (
	DefaultFilePermissions = 0644
)

var logger = logrus.WithField("component", "imaging")

// supportedExtensions lists the formats offered by the upload picker
var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Size is a pixel area a bitmap has to fit into
type Size struct {
	Width  int
	Height int
}

// NewSize creates a Size
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// SupportedExtensions returns the file extensions accepted for upload
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// IsSupported reports whether the path has an accepted image extension
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range supportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load decodes the image at path and returns it with its format name
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening image file: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// LoadImagePreview decodes the file at path and scales it to fit box
func LoadImagePreview(path string, box Size) (*image.NRGBA, error) {
	img, format, err := Load(path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	logger.WithFields(logrus.Fields{
		"path":   path,
		"format": format,
		"width":  b.Dx(),
		"height": b.Dy(),
	}).Debug("Image loaded for preview")

	return Fit(img, box), nil
}

// ComputeScaledDimensions returns the largest size with the source aspect ratio that fits the target
func ComputeScaledDimensions(originalWidth, originalHeight, targetWidth, targetHeight int) (int, int) {
	if originalWidth <= 0 || originalHeight <= 0 || targetWidth <= 0 || targetHeight <= 0 {
		return 0, 0
	}

	originalAspect := float64(originalWidth) / float64(originalHeight)
	targetAspect := float64(targetWidth) / float64(targetHeight)

	var scaledWidth, scaledHeight int
	if originalAspect > targetAspect {
		// Original is wider - scale to target width
		scaledWidth = targetWidth
		scaledHeight = int(math.Round(float64(targetWidth) / originalAspect))
	} else {
		// Original is taller - scale to target height
		scaledHeight = targetHeight
		scaledWidth = int(math.Round(float64(targetHeight) * originalAspect))
	}

	if scaledWidth < 1 {
		scaledWidth = 1
	}
	if scaledHeight < 1 {
		scaledHeight = 1
	}
	return scaledWidth, scaledHeight
}

// Fit scales src with Catmull-Rom filtering so it fits box, keeping the aspect ratio
func Fit(src image.Image, box Size) *image.NRGBA {
	return fitWith(src, box, xdraw.CatmullRom)
}

// FitSharp scales src with nearest-neighbour sampling; used for QR symbols so module edges stay crisp
func FitSharp(src image.Image, box Size) *image.NRGBA {
	return fitWith(src, box, xdraw.NearestNeighbor)
}

func fitWith(src image.Image, box Size, scaler xdraw.Scaler) *image.NRGBA {
	b := src.Bounds()
	w, h := ComputeScaledDimensions(b.Dx(), b.Dy(), box.Width, box.Height)
	if w == 0 || h == 0 {
		return ToDisplay(src)
	}
	if w == b.Dx() && h == b.Dy() {
		return ToDisplay(src)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// ToDisplay converts any raster image into an NRGBA bitmap anchored at the origin
func ToDisplay(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// EncodePNG writes img to w as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG image: %w", err)
	}
	return nil
}

// WritePNG writes img to path as PNG, replacing any existing file
func WritePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.WithField("path", path).Debug("PNG written")
	return nil
}
