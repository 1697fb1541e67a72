package payment

import (
	"strings"
	"testing"
	"time"

	"relay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMockPaymentData_Shape(t *testing.T) {
	svc := NewService()

	for i := 0; i < 200; i++ {
		data := svc.GenerateMockPaymentData()
		require.NotNil(t, data)

		assert.Regexp(t, `^[0-9a-f]{16}$`, data.ID)
		assert.Contains(t, models.PaymentMethods, data.PaymentMethod)
		assert.Contains(t, models.Banks, data.Bank)
		assert.True(t, strings.HasPrefix(data.Reference, ReferencePrefix))
		assert.Regexp(t, `^[0-9a-f]{12}$`, strings.TrimPrefix(data.Reference, ReferencePrefix))
		assert.GreaterOrEqual(t, data.ExpiresIn, MinExpiryHours)
		assert.LessOrEqual(t, data.ExpiresIn, MaxExpiryHours)
		assert.Regexp(t, `^[0-9a-f]{8}$`, data.MerchantCode)

		_, err := time.Parse(time.RFC3339, data.Timestamp)
		assert.NoError(t, err)
	}
}

func TestGenerateMockPaymentData_Deterministic(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		pick       int
		wantMethod models.PaymentMethod
		wantBank   string
		wantExpiry int
	}{
		{name: "lowest choices", pick: 0, wantMethod: models.PaymentMethodBankTransfer, wantBank: "BCA", wantExpiry: 24},
		{name: "highest choices", pick: -1, wantMethod: models.PaymentMethodQRIS, wantBank: "MANDIRI", wantExpiry: 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intn := func(n int) int {
				if tt.pick < 0 {
					return n - 1
				}
				return tt.pick
			}
			hex := func(n int) string { return strings.Repeat("ab", n) }

			data := NewServiceWithSource(intn, hex, func() time.Time { return now }).GenerateMockPaymentData()

			assert.Equal(t, "abababababababab", data.ID)
			assert.Equal(t, "2024-01-01T12:00:00.000Z", data.Timestamp)
			assert.Equal(t, tt.wantMethod, data.PaymentMethod)
			assert.Equal(t, tt.wantBank, data.Bank)
			assert.Equal(t, "PAY-abababababab", data.Reference)
			assert.Equal(t, tt.wantExpiry, data.ExpiresIn)
			assert.Equal(t, "abababab", data.MerchantCode)
		})
	}
}
