package click

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	httpclient "github.com/bekzodtm/shoppay/internal/pkg/http"
	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// payment_status value the provider reports once a charge is confirmed
const paymentStatusConfirmed = 2

// Client is the Click merchant API client. Every operation returns a
// GatewayResult; transport and provider failures are folded into
// Success=false so callers never crash on provider unavailability.
type Client struct {
	cfg    models.ClickConfig
	client *httpclient.Client
	now    func() time.Time
}

// NewClient creates a Click merchant API client
func NewClient(cfg models.ClickConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &Client{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, timeout),
		now:    time.Now,
	}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "click"
}

// apiResponse is the provider's uniform response envelope
type apiResponse struct {
	ErrorCode     int    `json:"error_code"`
	ErrorNote     string `json:"error_note"`
	InvoiceID     int64  `json:"invoice_id"`
	InvoiceStatus int    `json:"invoice_status"`
	PaymentID     int64  `json:"payment_id"`
	PaymentStatus int    `json:"payment_status"`
	CardToken     string `json:"card_token"`
	CardNumber    string `json:"card_number"`
}

// CreateInvoice opens a phone-number-keyed invoice for an order
func (c *Client) CreateInvoice(ctx context.Context, req *models.GatewayInvoiceRequest) (*models.GatewayResult, error) {
	body := map[string]interface{}{
		"service_id":        c.cfg.ServiceID,
		"amount":            req.Amount,
		"phone_number":      req.PhoneNumber,
		"merchant_trans_id": req.OrderID,
	}
	return c.call(ctx, http.MethodPost, "/invoice/create", body)
}

// CheckInvoice fetches the current status of an invoice
func (c *Client) CheckInvoice(ctx context.Context, invoiceID string) (*models.GatewayResult, error) {
	path := fmt.Sprintf("/invoice/status/%d/%s", c.cfg.ServiceID, invoiceID)
	return c.call(ctx, http.MethodGet, path, nil)
}

// RequestCardToken tokenizes a card; the provider replies with the token and
// a masked card number, then pushes an SMS code to the cardholder
func (c *Client) RequestCardToken(ctx context.Context, req *models.GatewayCardTokenRequest) (*models.GatewayResult, error) {
	body := map[string]interface{}{
		"service_id":  c.cfg.ServiceID,
		"card_number": req.CardNumber,
		"expire_date": req.ExpireDate,
		"temporary":   req.IsTemporary,
	}
	return c.call(ctx, http.MethodPost, "/card_token/request", body)
}

// VerifyCardToken confirms card ownership with the SMS code; the provider
// returns the full card number on success
func (c *Client) VerifyCardToken(ctx context.Context, token, smsCode string) (*models.GatewayResult, error) {
	body := map[string]interface{}{
		"service_id": c.cfg.ServiceID,
		"card_token": token,
		"sms_code":   smsCode,
	}
	return c.call(ctx, http.MethodPost, "/card_token/verify", body)
}

// PayWithToken charges a verified card token
func (c *Client) PayWithToken(ctx context.Context, req *models.GatewayTokenPaymentRequest) (*models.GatewayResult, error) {
	body := map[string]interface{}{
		"service_id":            c.cfg.ServiceID,
		"card_token":            req.CardToken,
		"amount":                req.Amount,
		"transaction_parameter": req.OrderID,
	}
	return c.call(ctx, http.MethodPost, "/card_token/payment", body)
}

// DeleteCardToken removes a token on the provider side
func (c *Client) DeleteCardToken(ctx context.Context, token string) (*models.GatewayResult, error) {
	path := fmt.Sprintf("/card_token/%d/%s", c.cfg.ServiceID, token)
	return c.call(ctx, http.MethodDelete, path, nil)
}

// CheckPayment fetches the status of a payment by provider payment id
func (c *Client) CheckPayment(ctx context.Context, paymentID string) (*models.GatewayResult, error) {
	path := fmt.Sprintf("/payment/status/%d/%s", c.cfg.ServiceID, paymentID)
	return c.call(ctx, http.MethodGet, path, nil)
}

// CheckPaymentByOrder fetches the status of a payment by order id and date
func (c *Client) CheckPaymentByOrder(ctx context.Context, orderID, paymentDate string) (*models.GatewayResult, error) {
	path := fmt.Sprintf("/payment/status_by_mti/%d/%s/%s", c.cfg.ServiceID, orderID, paymentDate)
	return c.call(ctx, http.MethodGet, path, nil)
}

// ReversePayment undoes a previously completed payment
func (c *Client) ReversePayment(ctx context.Context, paymentID string) (*models.GatewayResult, error) {
	path := fmt.Sprintf("/payment/reversal/%d/%s", c.cfg.ServiceID, paymentID)
	return c.call(ctx, http.MethodDelete, path, nil)
}

// call performs one authenticated merchant API request and normalizes the
// outcome into a GatewayResult
func (c *Client) call(ctx context.Context, method, path string, body interface{}) (*models.GatewayResult, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.client.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Auth", authHeader(c.cfg.MerchantUserID, c.cfg.SecretKey, c.now()))

	resp, err := c.client.HTTPClient.Do(httpReq)
	if err != nil {
		logger.Warn("Click request failed",
			logger.String("path", path),
			logger.Err(err),
		)
		return &models.GatewayResult{Success: false, ErrorNote: "gateway unreachable"}, nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.GatewayResult{Success: false, ErrorNote: "failed to read gateway response"}, nil
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Click returned unexpected status",
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
		)
		return &models.GatewayResult{
			Success:   false,
			ErrorNote: fmt.Sprintf("gateway status %d", resp.StatusCode),
		}, nil
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return &models.GatewayResult{Success: false, ErrorNote: "malformed gateway response"}, nil
	}

	result := &models.GatewayResult{
		Success:       apiResp.ErrorCode == 0,
		ErrorCode:     apiResp.ErrorCode,
		ErrorNote:     apiResp.ErrorNote,
		PaymentStatus: apiResp.PaymentStatus,
		Confirmed:     apiResp.PaymentStatus == paymentStatusConfirmed,
		CardToken:     apiResp.CardToken,
		CardNumber:    apiResp.CardNumber,
	}
	if apiResp.InvoiceID != 0 {
		result.InvoiceID = fmt.Sprintf("%d", apiResp.InvoiceID)
	}
	if apiResp.PaymentID != 0 {
		result.PaymentID = fmt.Sprintf("%d", apiResp.PaymentID)
	}

	if !result.Success {
		logger.Warn("Click rejected request",
			logger.String("path", path),
			logger.Int("error_code", apiResp.ErrorCode),
			logger.String("error_note", apiResp.ErrorNote),
		)
	}

	return result, nil
}
