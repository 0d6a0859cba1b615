package imaging

// Package imaging loads, scales, converts and writes raster images for the
// preview panes and the saved QR files. BMP support comes from
// golang.org/x/image/bmp; PNG, JPEG and GIF from the standard decoders.
