package models

import "fmt"

// NotificationPayload is the body accepted by POST /api/notifications, kept
// exactly as decoded so the webhook receives every field the caller sent.
// Field types are not checked.
type NotificationPayload map[string]interface{}

// ID is the tenant id as text, for log and error messages.
func (p NotificationPayload) ID() string {
	v, ok := p["id"]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// HasCharges reports whether a non-null charges value is present.
func (p NotificationPayload) HasCharges() bool {
	return p["charges"] != nil
}

// Charge returns a field of the charges object. It is nil when charges is
// missing, is not an object or has no such field.
func (p NotificationPayload) Charge(key string) interface{} {
	charges, ok := p["charges"].(map[string]interface{})
	if !ok {
		return nil
	}
	return charges[key]
}

// Amount is the figure a tenant is asked to pay: the charges total when
// charges are present, the monthly charges otherwise.
func (p NotificationPayload) Amount() interface{} {
	if p.HasCharges() {
		return p.Charge("total")
	}
	return p["monthlyCharges"]
}

// Enrich returns a copy of p with the generated payment data and QR location
// set, overriding any caller values under the same keys.
func (p NotificationPayload) Enrich(paymentData *PaymentData, qrCodeURL string) NotificationPayload {
	out := make(NotificationPayload, len(p)+2)
	for k, v := range p {
		out[k] = v
	}
	out["paymentData"] = paymentData
	out["qrCodeUrl"] = qrCodeURL
	return out
}

// NotificationLog is the fixed projection written to the log for every
// received notification. Values are logged as received; absent or null
// fields are left out.
type NotificationLog struct {
	TenantID       interface{}     `json:"tenantId,omitempty"`
	TenantName     interface{}     `json:"tenantName,omitempty"`
	Room           interface{}     `json:"room,omitempty"`
	Type           interface{}     `json:"type,omitempty"`
	DueDate        interface{}     `json:"dueDate,omitempty"`
	TotalAmount    interface{}     `json:"totalAmount,omitempty"`
	MonthlyCharges interface{}     `json:"monthlyCharges,omitempty"`
	Charges        *ChargesSummary `json:"charges,omitempty"`
}

type ChargesSummary struct {
	BaseRent       interface{} `json:"baseRent,omitempty"`
	ElectricityFee interface{} `json:"electricityFee,omitempty"`
	WaterFee       interface{} `json:"waterFee,omitempty"`
	InternetFee    interface{} `json:"internetFee,omitempty"`
	ParkingFee     interface{} `json:"parkingFee,omitempty"`
}

// LogProjection builds the NotificationLog for p. The charges block is left
// out when the payload carries no charges.
func (p NotificationPayload) LogProjection() NotificationLog {
	entry := NotificationLog{
		TenantID:       p["id"],
		TenantName:     p["name"],
		Room:           p["room"],
		Type:           p["notificationType"],
		DueDate:        p["paymentDueDate"],
		MonthlyCharges: p["monthlyCharges"],
	}
	if p.HasCharges() {
		entry.TotalAmount = p.Charge("total")
		entry.Charges = &ChargesSummary{
			BaseRent:       p.Charge("baseRent"),
			ElectricityFee: p.Charge("electricityFee"),
			WaterFee:       p.Charge("waterFee"),
			InternetFee:    p.Charge("internetFee"),
			ParkingFee:     p.Charge("parkingFee"),
		}
	}
	return entry
}

// NotificationResult is what a processed notification hands back to the
// HTTP layer. Enriched fields are empty in the other modes.
type NotificationResult struct {
	QRCodeURL   string
	PaymentData *PaymentData
}
