package model

import (
	"image"
	"time"

	"github.com/google/uuid"
)

// Generation holds the QR images produced by one successful generate request
type Generation struct {
	ID        string
	Inputs    Inputs
	CreatedAt time.Time
	images    map[Slot]image.Image
}

// NewGeneration creates an empty generation record for the given inputs
func NewGeneration(inputs Inputs) *Generation {
	return &Generation{
		ID:        uuid.NewString(),
		Inputs:    inputs.Normalize(),
		CreatedAt: time.Now(),
		images:    make(map[Slot]image.Image),
	}
}

// SetImage stores the image for a slot; a nil image clears the slot
func (g *Generation) SetImage(slot Slot, img image.Image) {
	if img == nil {
		delete(g.images, slot)
		return
	}
	g.images[slot] = img
}

// Image returns the image for a slot, or nil when the slot is absent
func (g *Generation) Image(slot Slot) image.Image {
	if g == nil {
		return nil
	}
	return g.images[slot]
}

// Has reports whether the slot holds an image
func (g *Generation) Has(slot Slot) bool {
	return g.Image(slot) != nil
}

// Count returns the number of present images
func (g *Generation) Count() int {
	if g == nil {
		return 0
	}
	return len(g.images)
}

// Present returns the slots holding an image, in display order
func (g *Generation) Present() []Slot {
	var present []Slot
	for _, slot := range Slots() {
		if g.Has(slot) {
			present = append(present, slot)
		}
	}
	return present
}

// ShortID returns the first segment of the generation ID for log lines and titles
func (g *Generation) ShortID() string {
	if g == nil || len(g.ID) < 8 {
		return ""
	}
	return g.ID[:8]
}
