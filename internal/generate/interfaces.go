package generate

import (
	"github.com/ytget/qr-studio/internal/model"
)

// Generator defines the interface for the QR generation controller.
type Generator interface {
	SetUpdateCallback(func(*model.Generation))
	Generate(url, text string) (*model.Generation, error)
	Save(dir string) ([]string, error)
	Current() *model.Generation
	State() model.ControllerState
	HasImages() bool

	// Reset discards the held images and returns to the empty state
	Reset()
}
