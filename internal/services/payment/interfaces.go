package payment

import (
	"relay/internal/models"
)

// Service produces the mock payment instructions attached to enriched
// notifications.
type Service interface {
	GenerateMockPaymentData() *models.PaymentData
}

const (
	ReferencePrefix = "PAY-"
	MinExpiryHours  = 24
	MaxExpiryHours  = 48
)
