package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	appErrors "relay/internal/errors"
	"relay/internal/middleware"
	"relay/internal/models"
	"relay/internal/services/notification"
	"relay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	msgNotificationSent   = "Notification sent successfully"
	msgNotificationFailed = "Failed to process notification"
)

type NotificationHandler struct {
	notificationService *notification.Service
	errs                response.Formatter
}

func NewNotificationHandler(svc *notification.Service, errs response.Formatter) *NotificationHandler {
	return &NotificationHandler{
		notificationService: svc,
		errs:                errs,
	}
}

// CreateNotification relays a tenant notification. Every failure, including
// a malformed body, answers 500 {success: false}.
func (h *NotificationHandler) CreateNotification(c *fiber.Ctx) error {
	payload, err := decodePayload(c.Body())
	if err != nil {
		err = fmt.Errorf("%w: %v", appErrors.ErrInvalidPayload, err)
		log.Printf("Error processing notification: %v", err)
		return h.errs.Failure(c, fiber.StatusInternalServerError, msgNotificationFailed, err)
	}

	result, err := h.notificationService.Process(c.UserContext(), middleware.GetRequestID(c), payload)
	if err != nil {
		log.Printf("Error processing notification [%s]: %v", appErrors.Code(err), err)
		return h.errs.Failure(c, fiber.StatusInternalServerError, msgNotificationFailed, err)
	}

	extra := fiber.Map{}
	if result.QRCodeURL != "" {
		extra["qrCodeUrl"] = result.QRCodeURL
		extra["paymentData"] = result.PaymentData
	}
	return response.Success(c, msgNotificationSent, extra)
}

// decodePayload reads a JSON object without imposing field types. Numbers
// keep their literal form so they are forwarded unchanged. An empty body is
// an empty object.
func decodePayload(body []byte) (models.NotificationPayload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return models.NotificationPayload{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload models.NotificationPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return payload, nil
}
