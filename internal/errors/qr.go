package errors

var (
	ErrQRGeneration = &DomainError{
		Code:    "QR_GENERATION_FAILED",
		Message: "failed to generate QR code",
	}
	ErrQRStore = &DomainError{
		Code:    "QR_STORE_FAILED",
		Message: "failed to store QR code",
	}
	// ErrQRDataUnavailable backs GET /api/qrcode/generate, whose data
	// helper was never implemented.
	ErrQRDataUnavailable = &DomainError{
		Code:    "QR_DATA_UNAVAILABLE",
		Message: "QR data generation is not available",
	}
)
