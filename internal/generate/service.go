package generate

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/imaging"
	"github.com/ytget/qr-studio/internal/model"
	"github.com/ytget/qr-studio/internal/platform"
)

var (
	// ErrNoInput is returned when both the URL and the text are blank
	ErrNoInput = errors.New("please enter a URL or text to generate QR codes")

	// ErrNothingToSave is returned when Save is called before any generation
	ErrNothingToSave = errors.New("no QR codes to save")
)

var logger = logrus.WithField("component", "generate")

// Service holds the images of the most recent successful generation
type Service struct {
	encoder  encoder.Encoder
	current  *model.Generation
	mu       sync.RWMutex
	onUpdate func(*model.Generation) // callback for UI updates
}

// NewService creates a new generation service backed by enc
func NewService(enc encoder.Encoder) *Service {
	if enc == nil {
		enc = encoder.NewQREncoder()
	}
	return &Service{encoder: enc}
}

// SetUpdateCallback sets the callback function for generation updates
func (s *Service) SetUpdateCallback(callback func(*model.Generation)) {
	s.onUpdate = callback
}

// Generate encodes each non-empty input and replaces the previous images.
// On error the previous generation is left untouched.
func (s *Service) Generate(url, text string) (*model.Generation, error) {
	inputs := model.NewInputs(url, text)
	if inputs.IsEmpty() {
		logger.Warn("Generation requested with no input")
		return nil, ErrNoInput
	}

	gen := model.NewGeneration(inputs)
	for _, slot := range model.Slots() {
		content := inputs.Value(slot)
		if content == "" {
			continue
		}

		img, err := s.encoder.Encode(content)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"slot":  slot,
				"error": err,
			}).Error("Failed to encode slot")
			return nil, fmt.Errorf("failed to generate %s QR code: %w", slot, err)
		}
		gen.SetImage(slot, img)
	}

	s.mu.Lock()
	s.current = gen
	s.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"generation": gen.ShortID(),
		"slots":      gen.Present(),
	}).Info("QR codes generated")

	s.notifyUpdate(gen)
	return gen, nil
}

// Save writes every present image as PNG into dir under its slot file name
func (s *Service) Save(dir string) ([]string, error) {
	s.mu.RLock()
	gen := s.current
	s.mu.RUnlock()

	if gen.Count() == 0 {
		logger.Warn("Save requested with no generated images")
		return nil, ErrNothingToSave
	}

	if dir == "" {
		return nil, fmt.Errorf("no target directory selected")
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to prepare directory %s: %w", dir, err)
	}

	var written []string
	for _, slot := range gen.Present() {
		path := filepath.Join(dir, slot.FileName())
		if err := imaging.WritePNG(path, gen.Image(slot)); err != nil {
			return written, fmt.Errorf("failed to save %s QR code: %w", slot, err)
		}
		written = append(written, path)
	}

	logger.WithFields(logrus.Fields{
		"generation": gen.ShortID(),
		"dir":        dir,
		"files":      len(written),
	}).Info("QR codes saved")

	return written, nil
}

// Current returns the most recent successful generation, or nil
func (s *Service) Current() *model.Generation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// State returns the controller state derived from the held images
func (s *Service) State() model.ControllerState {
	if s.HasImages() {
		return model.StateGenerated
	}
	return model.StateEmpty
}

// HasImages reports whether at least one image is held
func (s *Service) HasImages() bool {
	return s.Current().Count() > 0
}

// Reset discards the held images
func (s *Service) Reset() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	logger.Debug("Generation reset")
	s.notifyUpdate(nil)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(gen *model.Generation) {
	if s.onUpdate != nil {
		s.onUpdate(gen)
	}
}
