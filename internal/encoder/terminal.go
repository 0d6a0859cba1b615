package encoder

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// RenderTerminal prints content as a half-block QR code suitable for a TTY
func RenderTerminal(w io.Writer, content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	qrterminal.GenerateHalfBlock(content, qrterminal.H, w)
	return nil
}
