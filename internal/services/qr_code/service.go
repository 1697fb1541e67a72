package qr_code

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"path"

	appErrors "relay/internal/errors"
	"relay/internal/repositories"

	"github.com/skip2/go-qrcode"
)

type service struct {
	repo       repositories.QRCodeRepository
	publicPath string
	opts       ImageOptions
}

func NewService(repo repositories.QRCodeRepository, publicPath string, opts ImageOptions) Service {
	if opts.Size <= 0 {
		opts = DefaultImageOptions
	}
	return &service{
		repo:       repo,
		publicPath: publicPath,
		opts:       opts,
	}
}

func (s *service) Render(ctx context.Context, v interface{}) (string, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: encode content: %v", appErrors.ErrQRGeneration, err)
	}

	png, err := s.encode(string(content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrQRGeneration, err)
	}

	name, err := s.repo.Put(ctx, png)
	if err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrQRStore, err)
	}
	return name, nil
}

func (s *service) encode(content string) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, err
	}
	qr.ForegroundColor = color.Black
	qr.BackgroundColor = color.White
	return qr.PNG(s.opts.Size)
}

func (s *service) URL(name string) string {
	return path.Join("/", s.publicPath, name)
}
