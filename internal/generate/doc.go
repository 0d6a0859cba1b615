package generate

// Package generate implements the QR generation controller: it turns the URL
// and text inputs into QR images through an encoder, keeps the images of the
// latest successful generation, and saves them under fixed file names.
