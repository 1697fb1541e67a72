package qr_code

import (
	"context"
)

// Service renders arbitrary JSON-serializable values as QR code images.
type Service interface {
	// Render encodes v as JSON, draws it as a PNG QR code, stores it and
	// returns the stored file name.
	Render(ctx context.Context, v interface{}) (string, error)
	// URL is the public path a stored file is served from.
	URL(name string) string
}

// ImageOptions are the fixed rendering parameters.
type ImageOptions struct {
	Size int // pixel width and height
}

var DefaultImageOptions = ImageOptions{Size: 300}
