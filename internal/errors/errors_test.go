package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("forward notification: %w", ErrWebhookRejected)

	assert.True(t, errors.Is(err, ErrWebhookRejected))
	assert.False(t, errors.Is(err, ErrWebhookUnreachable))
	assert.Equal(t, "WEBHOOK_REJECTED", Code(err))
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	copyErr := &DomainError{Code: ErrQRStore.Code, Message: "disk full"}

	assert.True(t, errors.Is(copyErr, ErrQRStore))
	assert.Equal(t, "disk full", copyErr.Error())
}

func TestCode_NoDomainError(t *testing.T) {
	assert.Empty(t, Code(errors.New("plain")))
	assert.Empty(t, Code(nil))
}
