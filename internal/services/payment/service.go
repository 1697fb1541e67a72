package payment

import (
	"math/rand"
	"time"

	"relay/internal/models"
	"relay/internal/utils"
)

type service struct {
	intn func(n int) int
	hex  func(n int) string
	now  func() time.Time
}

// NewService creates a payment data generator backed by math/rand and
// crypto/rand hex identifiers.
func NewService() Service {
	return &service{
		intn: rand.Intn,
		hex:  utils.MustGenerateUniqueID,
		now:  time.Now,
	}
}

// NewServiceWithSource lets tests pin the random choices and the clock.
func NewServiceWithSource(intn func(n int) int, hex func(n int) string, now func() time.Time) Service {
	return &service{intn: intn, hex: hex, now: now}
}

func (s *service) GenerateMockPaymentData() *models.PaymentData {
	return &models.PaymentData{
		ID:            s.hex(8),
		Timestamp:     utils.ISOTime(s.now()),
		PaymentMethod: models.PaymentMethods[s.intn(len(models.PaymentMethods))],
		Bank:          models.Banks[s.intn(len(models.Banks))],
		Reference:     ReferencePrefix + s.hex(6),
		ExpiresIn:     MinExpiryHours + s.intn(MaxExpiryHours-MinExpiryHours+1),
		MerchantCode:  s.hex(4),
	}
}
