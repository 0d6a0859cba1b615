package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PreviewPane shows a bitmap inside a bordered box, or a message when empty
type PreviewPane struct {
	widget.BaseWidget

	placeholder string
	bitmap      image.Image
	size        fyne.Size

	image   *canvas.Image
	message *widget.Label
	border  *canvas.Rectangle
	spacer  *canvas.Rectangle
}

// NewPreviewPane creates a pane of the given minimum size showing placeholder.
// Sharp panes scale pixels without smoothing so QR modules keep hard edges.
func NewPreviewPane(placeholder string, size fyne.Size, sharp bool) *PreviewPane {
	p := &PreviewPane{
		placeholder: placeholder,
		size:        size,
	}
	p.ExtendBaseWidget(p)
	p.createUI(sharp)
	p.Reset()
	return p
}

// createUI creates the pane components
func (p *PreviewPane) createUI(sharp bool) {
	p.image = &canvas.Image{FillMode: canvas.ImageFillContain}
	if sharp {
		p.image.ScaleMode = canvas.ImageScalePixels
	}

	p.message = widget.NewLabel("")
	p.message.Alignment = fyne.TextAlignCenter

	p.border = canvas.NewRectangle(color.Transparent)
	p.border.StrokeColor = PaneBorderColor
	p.border.StrokeWidth = PaneBorderWidth

	// Transparent rectangle that pins the minimum size
	p.spacer = canvas.NewRectangle(color.Transparent)
	p.spacer.SetMinSize(p.size)
}

// SetBorder changes the outline style
func (p *PreviewPane) SetBorder(c color.Color, width float32) {
	p.border.StrokeColor = c
	p.border.StrokeWidth = width
	p.border.Refresh()
}

// SetImage displays img and hides the message
func (p *PreviewPane) SetImage(img image.Image) {
	if img == nil {
		p.Reset()
		return
	}
	p.bitmap = img
	p.image.Image = img
	p.image.Show()
	p.message.Hide()
	p.Refresh()
}

// ShowMessage clears the image and displays text instead
func (p *PreviewPane) ShowMessage(text string) {
	p.bitmap = nil
	p.image.Image = nil
	p.image.Hide()
	p.message.SetText(text)
	p.message.Show()
	p.Refresh()
}

// Reset clears the image and shows the placeholder
func (p *PreviewPane) Reset() {
	p.ShowMessage(p.placeholder)
}

// SetPlaceholder changes the placeholder; it is shown immediately if the pane is idle
func (p *PreviewPane) SetPlaceholder(text string) {
	showing := p.bitmap == nil && p.message.Text == p.placeholder
	p.placeholder = text
	if showing {
		p.Reset()
	}
}

// HasImage reports whether a bitmap is displayed
func (p *PreviewPane) HasImage() bool {
	return p.bitmap != nil
}

// Bitmap returns the displayed bitmap, or nil
func (p *PreviewPane) Bitmap() image.Image {
	return p.bitmap
}

// Message returns the text shown when no bitmap is displayed
func (p *PreviewPane) Message() string {
	if p.bitmap != nil {
		return ""
	}
	return p.message.Text
}

// CreateRenderer creates the widget renderer
func (p *PreviewPane) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(
		p.spacer,
		p.border,
		container.NewPadded(container.NewCenter(p.message)),
		container.NewPadded(p.image),
	)
	return widget.NewSimpleRenderer(content)
}
