package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/generate"
	"github.com/ytget/qr-studio/internal/platform"
)

// ErrNoOutput is returned when generate has neither a directory nor --print
var ErrNoOutput = errors.New("nothing to do: pass --out and/or --print")

type generateOptions struct {
	url   string
	text  string
	out   string
	print bool
	open  bool

	openFile func(path string) error
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{openFile: platform.OpenFileWithDefaultApp}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate QR codes without opening a window",
		Example: "  " + CommandName + " generate --url https://example.com --out ./codes\n" +
			"  " + CommandName + " generate --text \"hello\" --print",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), generate.NewService(nil), opts)
		},
	}
	cmd.Flags().StringVar(&opts.url, "url", "", "URL to encode")
	cmd.Flags().StringVar(&opts.text, "text", "", "Free text to encode")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Directory to write qr_url.png / qr_text.png into")
	cmd.Flags().BoolVar(&opts.print, "print", false, "Render the codes in the terminal")
	cmd.Flags().BoolVar(&opts.open, "open", false, "Open the written files with the default image viewer")

	return cmd
}

// runGenerate drives the same controller the window uses
func runGenerate(w io.Writer, generator generate.Generator, opts generateOptions) error {
	if opts.out == "" && !opts.print {
		return ErrNoOutput
	}

	gen, err := generator.Generate(opts.url, opts.text)
	if err != nil {
		return err
	}

	if opts.out != "" {
		paths, err := generator.Save(opts.out)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintln(w, path)
			if opts.open && opts.openFile != nil {
				if err := opts.openFile(path); err != nil {
					logger.WithError(err).WithField("path", path).Warn("Failed to open saved code")
				}
			}
		}
	}

	if opts.print {
		if !isTerminal(w) {
			logger.Debug("Output is not a terminal, half blocks may not render")
		}
		for _, slot := range gen.Present() {
			fmt.Fprintf(w, "%s:\n", slot)
			if err := encoder.RenderTerminal(w, gen.Inputs.Value(slot)); err != nil {
				return fmt.Errorf("rendering %s code: %w", slot, err)
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"generation": gen.ShortID(),
		"codes":      gen.Count(),
		"out":        opts.out,
	}).Info("Generate command finished")
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
