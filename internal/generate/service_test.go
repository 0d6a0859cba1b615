package generate

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/imaging"
	"github.com/ytget/qr-studio/internal/model"
)

// failingEncoder fails for one specific content and delegates otherwise
type failingEncoder struct {
	failOn string
	inner  encoder.Encoder
}

func (f *failingEncoder) Encode(content string) (image.Image, error) {
	if content == f.failOn {
		return nil, errors.New("boom")
	}
	return f.inner.Encode(content)
}

func decodeFile(t *testing.T, path string) string {
	t.Helper()
	img, _, err := imaging.Load(path)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", path, err)
	}
	text, err := encoder.Decode(img)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return text
}

func TestNewService(t *testing.T) {
	service := NewService(nil)

	if service.encoder == nil {
		t.Fatal("Expected default encoder when nil is passed")
	}
	if service.State() != model.StateEmpty {
		t.Errorf("Expected initial state Empty, got %s", service.State())
	}
	if service.HasImages() {
		t.Error("Expected no images initially")
	}
}

func TestGenerate_NoInput(t *testing.T) {
	service := NewService(nil)

	tests := []struct {
		url  string
		text string
	}{
		{"", ""},
		{"   ", ""},
		{"", " \n\t "},
	}

	for _, test := range tests {
		gen, err := service.Generate(test.url, test.text)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("Generate(%q, %q): expected ErrNoInput, got %v", test.url, test.text, err)
		}
		if gen != nil {
			t.Errorf("Generate(%q, %q): expected nil generation", test.url, test.text)
		}
	}

	if service.HasImages() {
		t.Error("Expected no images after empty generation")
	}
}

func TestGenerate_NoInputKeepsPreviousImages(t *testing.T) {
	service := NewService(nil)

	first, err := service.Generate("https://example.com", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.Generate("", ""); !errors.Is(err, ErrNoInput) {
		t.Fatalf("Expected ErrNoInput, got %v", err)
	}

	if service.Current() != first {
		t.Error("Expected previous generation to be kept after empty request")
	}
	if service.State() != model.StateGenerated {
		t.Errorf("Expected state Generated, got %s", service.State())
	}
}

func TestGenerate_URLOnly(t *testing.T) {
	service := NewService(nil)

	gen, err := service.Generate("  https://example.com  ", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gen.Count() != 1 {
		t.Fatalf("Expected exactly one image, got %d", gen.Count())
	}
	if !gen.Has(model.SlotURL) {
		t.Error("Expected URL slot to be populated")
	}
	if gen.Has(model.SlotText) {
		t.Error("Expected text slot to be absent")
	}

	text, err := encoder.Decode(gen.Image(model.SlotURL))
	if err != nil {
		t.Fatalf("Failed to decode URL image: %v", err)
	}
	if text != "https://example.com" {
		t.Errorf("Expected trimmed URL to be encoded, got %q", text)
	}
}

func TestGenerate_BothInputsRoundTrip(t *testing.T) {
	service := NewService(nil)

	gen, err := service.Generate("https://example.com/a", "Hello QR")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := map[model.Slot]string{
		model.SlotURL:  "https://example.com/a",
		model.SlotText: "Hello QR",
	}

	for slot, want := range expected {
		got, err := encoder.Decode(gen.Image(slot))
		if err != nil {
			t.Fatalf("Failed to decode %s image: %v", slot, err)
		}
		if got != want {
			t.Errorf("Slot %s: expected %q, got %q", slot, want, got)
		}
	}
}

func TestGenerate_ReplacesPreviousImages(t *testing.T) {
	service := NewService(nil)

	if _, err := service.Generate("https://first.example", "first text"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	gen, err := service.Generate("", "second text")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gen.Has(model.SlotURL) {
		t.Error("Expected URL slot to be cleared by second generation")
	}
	if service.Current().Count() != 1 {
		t.Errorf("Expected one image after replacement, got %d", service.Current().Count())
	}

	text, err := encoder.Decode(service.Current().Image(model.SlotText))
	if err != nil {
		t.Fatalf("Failed to decode text image: %v", err)
	}
	if text != "second text" {
		t.Errorf("Expected 'second text', got %q", text)
	}
}

func TestGenerate_EncoderFailureKeepsPrevious(t *testing.T) {
	service := NewService(&failingEncoder{failOn: "bad", inner: encoder.NewQREncoder()})

	first, err := service.Generate("https://ok.example", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = service.Generate("https://ok.example", "bad")
	if err == nil {
		t.Fatal("Expected encoder error, got nil")
	}
	if errors.Is(err, ErrNoInput) {
		t.Error("Encoder failure should not be reported as ErrNoInput")
	}

	if service.Current() != first {
		t.Error("Expected previous generation to survive an encoder failure")
	}
}

func TestGenerate_Callback(t *testing.T) {
	service := NewService(nil)

	var received []*model.Generation
	service.SetUpdateCallback(func(gen *model.Generation) {
		received = append(received, gen)
	})

	gen, err := service.Generate("", "callback")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	service.Generate("", "")
	service.Reset()

	if len(received) != 2 {
		t.Fatalf("Expected 2 callbacks (generate, reset), got %d", len(received))
	}
	if received[0] != gen {
		t.Error("Expected first callback to carry the generation")
	}
	if received[1] != nil {
		t.Error("Expected reset callback to carry nil")
	}
}

func TestSave_NothingToSave(t *testing.T) {
	service := NewService(nil)
	dir := t.TempDir()

	paths, err := service.Save(dir)
	if !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("Expected ErrNothingToSave, got %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("Expected no paths, got %v", paths)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files written, found %d", len(entries))
	}
}

func TestSave_AfterReset(t *testing.T) {
	service := NewService(nil)

	if _, err := service.Generate("https://example.com", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	service.Reset()

	if _, err := service.Save(t.TempDir()); !errors.Is(err, ErrNothingToSave) {
		t.Errorf("Expected ErrNothingToSave after reset, got %v", err)
	}
	if service.State() != model.StateEmpty {
		t.Errorf("Expected state Empty after reset, got %s", service.State())
	}
}

func TestSave_OneImage(t *testing.T) {
	service := NewService(nil)
	dir := t.TempDir()

	if _, err := service.Generate("https://example.com", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	paths, err := service.Save(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(paths) != 1 || filepath.Base(paths[0]) != "qr_url.png" {
		t.Fatalf("Expected only qr_url.png, got %v", paths)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file in dir, found %d", len(entries))
	}

	if got := decodeFile(t, paths[0]); got != "https://example.com" {
		t.Errorf("Expected saved URL code to decode to URL, got %q", got)
	}
}

func TestSave_TwoImagesOverwrite(t *testing.T) {
	service := NewService(nil)
	dir := t.TempDir()

	stale := filepath.Join(dir, "qr_text.png")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatalf("Failed to seed stale file: %v", err)
	}

	if _, err := service.Generate("https://example.com", "fresh text"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	paths, err := service.Save(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %v", paths)
	}
	if filepath.Base(paths[0]) != "qr_url.png" || filepath.Base(paths[1]) != "qr_text.png" {
		t.Errorf("Expected [qr_url.png qr_text.png], got %v", paths)
	}

	if got := decodeFile(t, stale); got != "fresh text" {
		t.Errorf("Expected overwritten text code, got %q", got)
	}
}

func TestSave_CreatesMissingDirectory(t *testing.T) {
	service := NewService(nil)
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := service.Generate("", "nested"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.Save(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "qr_text.png")); err != nil {
		t.Errorf("Expected qr_text.png in new directory: %v", err)
	}
}

func TestSave_EmptyDirectory(t *testing.T) {
	service := NewService(nil)

	if _, err := service.Generate("", "text"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := service.Save(""); err == nil {
		t.Error("Expected error for empty directory, got nil")
	}
}
