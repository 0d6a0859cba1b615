package cli

// Package cli holds the qrstudio command tree. Running the binary without a
// subcommand opens the desktop window; generate and scan work headless.
