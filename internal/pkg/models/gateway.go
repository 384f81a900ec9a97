package models

// GatewayResult is the uniform outcome of any provider operation. Transport
// and provider-side failures are folded into Success=false with the
// provider's error code and note; callers branch on Success only.
type GatewayResult struct {
	Success   bool   `json:"success"`
	ErrorCode int    `json:"error_code"`
	ErrorNote string `json:"error_note"`

	// Operation-specific data, populated where relevant
	InvoiceID     string `json:"invoice_id,omitempty"`
	PaymentID     string `json:"payment_id,omitempty"`
	PaymentStatus int    `json:"payment_status,omitempty"`
	Confirmed     bool   `json:"confirmed,omitempty"`
	CardToken     string `json:"card_token,omitempty"`
	CardNumber    string `json:"card_number,omitempty"`
}

// GatewayInvoiceRequest asks the provider to open an invoice for an order
type GatewayInvoiceRequest struct {
	OrderID     string
	Amount      float64
	PhoneNumber string
}

// GatewayCardTokenRequest asks the provider to tokenize a card
type GatewayCardTokenRequest struct {
	CardNumber  string
	ExpireDate  string
	IsTemporary bool
}

// GatewayTokenPaymentRequest charges a previously verified card token
type GatewayTokenPaymentRequest struct {
	CardToken string
	OrderID   string
	Amount    float64
}
