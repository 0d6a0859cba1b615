package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/generate"
	"github.com/ytget/qr-studio/internal/imaging"
	"github.com/ytget/qr-studio/internal/model"
)

// execute runs the command tree with args and returns captured output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand("1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if strings.TrimSpace(out) != "qrstudio 1.2.3" {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestLogLevelFlag(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	if _, err := execute(t, "--log-level", "debug", "version"); err != nil {
		t.Fatalf("Expected debug level to be accepted: %v", err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", logrus.GetLevel())
	}

	if _, err := execute(t, "--log-level", "loud", "version"); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

func TestGenerateCommand_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "codes")

	out, err := execute(t, "generate", "--url", "https://example.com", "--text", "hello", "--out", dir)
	if err != nil {
		t.Fatalf("generate returned error: %v", err)
	}

	for _, name := range []string{model.FileNameURL, model.FileNameText} {
		path := filepath.Join(dir, name)
		if !strings.Contains(out, path) {
			t.Errorf("Expected output to list %s, got %q", path, out)
		}
	}

	text, err := scanFile(filepath.Join(dir, model.FileNameText))
	if err != nil {
		t.Fatalf("scanFile returned error: %v", err)
	}
	if text != "hello" {
		t.Errorf("Expected 'hello', got %q", text)
	}
}

func TestGenerateCommand_NoInput(t *testing.T) {
	_, err := execute(t, "generate", "--url", "  ", "--out", t.TempDir())
	if !errors.Is(err, generate.ErrNoInput) {
		t.Errorf("Expected ErrNoInput, got %v", err)
	}
}

func TestRunGenerate_NoOutput(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(&out, generate.NewService(nil), generateOptions{text: "hello"})
	if !errors.Is(err, ErrNoOutput) {
		t.Errorf("Expected ErrNoOutput, got %v", err)
	}
}

func TestRunGenerate_Print(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(&out, generate.NewService(nil), generateOptions{text: "hello", print: true})
	if err != nil {
		t.Fatalf("runGenerate returned error: %v", err)
	}

	s := out.String()
	if !strings.HasPrefix(s, "text:\n") {
		t.Errorf("Expected output to start with slot label, got %q", s[:min(len(s), 20)])
	}
	if strings.Contains(s, "url:") {
		t.Error("URL slot should not be printed when URL is empty")
	}
	if len(s) < 100 {
		t.Errorf("Expected a rendered code, got %d bytes", len(s))
	}
}

func TestScanCommand(t *testing.T) {
	code, err := encoder.NewQREncoder().Encode("scan me")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "code.png")
	if err := imaging.WritePNG(path, code); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}

	out, err := execute(t, "scan", path)
	if err != nil {
		t.Fatalf("scan returned error: %v", err)
	}
	if strings.TrimSpace(out) != "scan me" {
		t.Errorf("Expected 'scan me', got %q", out)
	}
}

func TestScanCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "scan", filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	blank := filepath.Join(dir, "blank.png")
	code, _ := encoder.NewQREncoder().Encode("x")
	if err := imaging.WritePNG(blank, imaging.Fit(code, imaging.NewSize(4, 4))); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}
	if _, err := scanFile(blank); err == nil {
		t.Error("Expected error for image without a readable QR code")
	}

	if _, err := execute(t, "scan"); err == nil {
		t.Error("Expected error when no file is given")
	}
}

func TestRunGenerate_OpenFiles(t *testing.T) {
	var opened []string
	opts := generateOptions{
		url:  "https://example.com",
		out:  t.TempDir(),
		open: true,
		openFile: func(path string) error {
			opened = append(opened, path)
			return errors.New("no viewer")
		},
	}

	var out bytes.Buffer
	if err := runGenerate(&out, generate.NewService(nil), opts); err != nil {
		t.Fatalf("A viewer failure should not fail the command: %v", err)
	}
	if len(opened) != 1 || filepath.Base(opened[0]) != model.FileNameURL {
		t.Errorf("Expected only %s to be opened, got %v", model.FileNameURL, opened)
	}
}
