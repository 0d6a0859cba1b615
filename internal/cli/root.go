package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandName is the binary name used in usage output
const CommandName = "qrstudio"

var logger = logrus.WithField("component", "cli")

// NewRootCommand builds the command tree; version is reported by the version command
func NewRootCommand(version string) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           CommandName,
		Short:         "Generate, preview and save QR codes for a URL and free text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogLevel(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(version)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// --- gui command ---------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(version)
		},
	})

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newScanCommand())

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", CommandName, version)
		},
	})

	return root
}

// Execute runs the command tree with the process arguments
func Execute(version string) error {
	err := NewRootCommand(version).Execute()
	if err != nil {
		logger.WithError(err).Error("Command failed")
	}
	return err
}

// setLogLevel applies a textual level to the global logger
func setLogLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)
	return nil
}
