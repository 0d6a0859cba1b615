package model

import "strings"

// Slot identifies one of the two generated image positions
type Slot string

const (
	SlotURL  Slot = "url"
	SlotText Slot = "text"
)

// File names written by Save, one per slot
const (
	FileNameURL  = "qr_url.png"
	FileNameText = "qr_text.png"
)

// Slots returns all slots in display order
func Slots() []Slot {
	return []Slot{SlotURL, SlotText}
}

// String returns the string representation of Slot
func (s Slot) String() string {
	return string(s)
}

// FileName returns the fixed output file name for the slot
func (s Slot) FileName() string {
	switch s {
	case SlotURL:
		return FileNameURL
	case SlotText:
		return FileNameText
	default:
		return ""
	}
}

// Inputs is the pair of optional strings a generation is requested for
type Inputs struct {
	URL  string
	Text string
}

// NewInputs creates a normalized input pair
func NewInputs(url, text string) Inputs {
	return Inputs{URL: url, Text: text}.Normalize()
}

// Normalize returns a copy with surrounding whitespace trimmed from both fields
func (in Inputs) Normalize() Inputs {
	return Inputs{
		URL:  strings.TrimSpace(in.URL),
		Text: strings.TrimSpace(in.Text),
	}
}

// IsEmpty reports whether both fields are empty after trimming
func (in Inputs) IsEmpty() bool {
	n := in.Normalize()
	return n.URL == "" && n.Text == ""
}

// Value returns the content for the given slot
func (in Inputs) Value(slot Slot) string {
	switch slot {
	case SlotURL:
		return in.URL
	case SlotText:
		return in.Text
	default:
		return ""
	}
}
