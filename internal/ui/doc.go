package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the generation service and renders the uploaded
// image, the generated QR codes, dialogs, and settings. All UI strings are
// localized via Localization.
