package models

// Gateway webhook error codes returned in Prepare/Complete responses
const (
	WebhookCodeSuccess          = 0
	WebhookCodeInvalidSignature = -1
	WebhookCodeIncorrectAmount  = -2
	WebhookCodeInvalidAction    = -3
	WebhookCodeAlreadyPaid      = -4
	WebhookCodeOrderNotFound    = -5
	WebhookCodePaymentNotFound  = -6
	WebhookCodeInternalError    = -7
)

// WebhookAction values recognized by the two-phase protocol
const (
	WebhookActionPrepare  = 0
	WebhookActionComplete = 1
)

// WebhookRequest is the inbound PREPARE/COMPLETE callback from the gateway.
// MerchantTransID carries the order id; PrepareID is set on COMPLETE only.
type WebhookRequest struct {
	TransID         int64   `json:"transId" form:"transId"`
	ServiceID       int64   `json:"serviceId" form:"serviceId"`
	PayDocID        int64   `json:"payDocId" form:"payDocId"`
	MerchantTransID string  `json:"merchantTransId" form:"merchantTransId"`
	Amount          float64 `json:"amount" form:"amount"`
	Action          int     `json:"action" form:"action"`
	Error           int     `json:"error" form:"error"`
	ErrorNote       string  `json:"errorNote" form:"errorNote"`
	SignTime        string  `json:"signTime" form:"signTime"`
	SignString      string  `json:"signString" form:"signString"`
	PrepareID       int64   `json:"prepareId" form:"prepareId"`
}

// PrepareResponse is the protocol response to a PREPARE callback
type PrepareResponse struct {
	TransID         int64  `json:"transId"`
	MerchantTransID string `json:"merchantTransId"`
	PrepareID       int64  `json:"prepareId"`
	Error           int    `json:"error"`
	ErrorNote       string `json:"errorNote"`
}

// CompleteResponse is the protocol response to a COMPLETE callback
type CompleteResponse struct {
	TransID         int64  `json:"transId"`
	MerchantTransID string `json:"merchantTransId"`
	ConfirmID       int64  `json:"confirmId"`
	Error           int    `json:"error"`
	ErrorNote       string `json:"errorNote"`
}
