package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/qr-studio/internal/encoder"
	"github.com/ytget/qr-studio/internal/imaging"
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE",
		Short: "Print the text of a QR code found in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := scanFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

// scanFile decodes the first QR code in the image at path
func scanFile(path string) (string, error) {
	img, format, err := imaging.Load(path)
	if err != nil {
		return "", err
	}

	text, err := encoder.Decode(img)
	if err != nil {
		return "", fmt.Errorf("scanning %s: %w", path, err)
	}

	logger.WithField("format", format).Debug("QR code decoded")
	return text, nil
}
