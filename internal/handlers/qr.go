package handlers

import (
	"log"

	appErrors "relay/internal/errors"
	"relay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type QRHandler struct {
	errs response.Formatter
}

func NewQRHandler(errs response.Formatter) *QRHandler {
	return &QRHandler{errs: errs}
}

// GenerateQRData backs GET /api/qrcode/generate. The data helper behind this
// route was never written, so it always fails the way the route does today.
func (h *QRHandler) GenerateQRData(c *fiber.Ctx) error {
	err := appErrors.ErrQRDataUnavailable
	log.Printf("Error generating QR data: %v", err)
	return h.errs.Failure(c, fiber.StatusInternalServerError, "Failed to generate QR data", err)
}
