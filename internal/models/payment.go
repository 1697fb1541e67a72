package models

// PaymentMethod and Bank values are drawn uniformly by the mock generator.
type PaymentMethod string

const (
	PaymentMethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	PaymentMethodVirtualAccount PaymentMethod = "VIRTUAL_ACCOUNT"
	PaymentMethodEWallet        PaymentMethod = "E_WALLET"
	PaymentMethodQRIS           PaymentMethod = "QRIS"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodBankTransfer,
	PaymentMethodVirtualAccount,
	PaymentMethodEWallet,
	PaymentMethodQRIS,
}

var Banks = []string{"BCA", "BNI", "BRI", "MANDIRI"}

// PaymentData is the mock payment instruction attached to an enriched
// notification. It is never stored.
type PaymentData struct {
	ID            string        `json:"id"`
	Timestamp     string        `json:"timestamp"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Bank          string        `json:"bank"`
	Reference     string        `json:"reference"`
	ExpiresIn     int           `json:"expiresIn"` // hours
	MerchantCode  string        `json:"merchantCode"`
}

// QRPayload is the document encoded into the generated QR image. Tenant
// fields are copied from the notification as received.
type QRPayload struct {
	TenantID    interface{}  `json:"tenantId"`
	TenantName  interface{}  `json:"tenantName"`
	Room        interface{}  `json:"room"`
	Amount      interface{}  `json:"amount"`
	DueDate     interface{}  `json:"dueDate"`
	PaymentData *PaymentData `json:"paymentData"`
}
