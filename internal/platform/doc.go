package platform

// Package platform contains OS integration glue: filesystem helpers, the
// default pictures directory, and opening or revealing saved files.
