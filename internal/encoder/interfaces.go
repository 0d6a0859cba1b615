package encoder

import "image"

// Encoder defines the interface for turning content into a QR raster image.
type Encoder interface {
	Encode(content string) (image.Image, error)
}
