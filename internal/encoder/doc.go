package encoder

// Package encoder wraps the third-party QR libraries: skip2/go-qrcode for
// rendering symbols, gozxing for reading them back, and qrterminal for
// printing them to a terminal.
