package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"relay/internal/config"
	appErrors "relay/internal/errors"
	"relay/internal/models"
	"relay/internal/services/payment"
	qr "relay/internal/services/qr_code"
	"relay/internal/services/webhook"
)

// Options wires a Service. Forwarder is required by the forward and enriched
// modes; Payments and QR only by enriched.
type Options struct {
	Mode      config.Mode
	Forwarder webhook.Forwarder
	Payments  payment.Service
	QR        qr.Service
	Logger    *log.Logger
}

// Service relays tenant notifications according to the configured mode.
type Service struct {
	mode      config.Mode
	forwarder webhook.Forwarder
	payments  payment.Service
	qr        qr.Service
	logger    *log.Logger
}

// NewService creates a new notification service.
func NewService(opts Options) (*Service, error) {
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("unknown relay mode %q", opts.Mode)
	}
	if opts.Mode.Forwards() && opts.Forwarder == nil {
		return nil, errors.New("relay mode " + string(opts.Mode) + " needs a webhook forwarder")
	}
	if opts.Mode == config.ModeEnriched && (opts.Payments == nil || opts.QR == nil) {
		return nil, errors.New("enriched relay mode needs payment and QR services")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Service{
		mode:      opts.Mode,
		forwarder: opts.Forwarder,
		payments:  opts.Payments,
		qr:        opts.QR,
		logger:    opts.Logger,
	}, nil
}

func (s *Service) Mode() config.Mode {
	return s.mode
}

// Process logs the notification and, depending on the mode, enriches and
// forwards it. Any failure aborts the whole notification.
func (s *Service) Process(ctx context.Context, requestID string, p models.NotificationPayload) (*models.NotificationResult, error) {
	if p == nil {
		return nil, appErrors.ErrInvalidPayload
	}
	// Only the enriched flow can work without a charges breakdown.
	if s.mode != config.ModeEnriched && !p.HasCharges() {
		return nil, appErrors.ErrMissingCharges
	}

	s.logReceived(p)

	switch s.mode {
	case config.ModeBasic:
		return &models.NotificationResult{}, nil

	case config.ModeForward:
		if err := s.forwarder.Forward(ctx, requestID, p); err != nil {
			return nil, fmt.Errorf("forward notification %s: %w", p.ID(), err)
		}
		return &models.NotificationResult{}, nil
	}

	paymentData := s.payments.GenerateMockPaymentData()

	name, err := s.qr.Render(ctx, models.QRPayload{
		TenantID:    p["id"],
		TenantName:  p["name"],
		Room:        p["room"],
		Amount:      p.Amount(),
		DueDate:     p["paymentDueDate"],
		PaymentData: paymentData,
	})
	if err != nil {
		return nil, fmt.Errorf("render QR code for %s: %w", p.ID(), err)
	}
	qrURL := s.qr.URL(name)

	if err := s.forwarder.Forward(ctx, requestID, p.Enrich(paymentData, qrURL)); err != nil {
		return nil, fmt.Errorf("forward notification %s: %w", p.ID(), err)
	}

	return &models.NotificationResult{
		QRCodeURL:   qrURL,
		PaymentData: paymentData,
	}, nil
}

func (s *Service) logReceived(p models.NotificationPayload) {
	entry, err := json.Marshal(p.LogProjection())
	if err != nil {
		s.logger.Printf("Notification received: %s (projection failed: %v)", p.ID(), err)
		return
	}
	s.logger.Printf("Notification received: %s", entry)
}
