package payme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	httpclient "github.com/bekzodtm/shoppay/internal/pkg/http"
	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// receipt state reported by the provider once a charge is confirmed
const receiptStatePaid = 4

// Payme amounts are expressed in tiyin (1/100 of a soum)
const tiyinPerSoum = 100

// Client is the Payme merchant API client (JSON-RPC receipts and cards
// methods). Transport and provider failures are folded into
// GatewayResult.Success=false.
type Client struct {
	cfg    models.PaymeConfig
	client *httpclient.Client
	seq    int64
}

// NewClient creates a Payme merchant API client
func NewClient(cfg models.PaymeConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &Client{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, timeout),
	}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "payme"
}

type rpcRequest struct {
	ID     int64                  `json:"id"`
	Method string                 `json:"method"`
	Params map[string]interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result struct {
		Receipt struct {
			ID    string `json:"_id"`
			State int    `json:"state"`
		} `json:"receipt"`
		Card struct {
			Number string `json:"number"`
			Token  string `json:"token"`
			Verify bool   `json:"verify"`
		} `json:"card"`
		Sent bool `json:"sent"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

// CreateInvoice opens a receipt for an order
func (c *Client) CreateInvoice(ctx context.Context, req *models.GatewayInvoiceRequest) (*models.GatewayResult, error) {
	return c.call(ctx, "receipts.create", map[string]interface{}{
		"amount": int64(req.Amount * tiyinPerSoum),
		"account": map[string]interface{}{
			"order_id": req.OrderID,
			"phone":    req.PhoneNumber,
		},
	})
}

// CheckInvoice fetches the current state of a receipt
func (c *Client) CheckInvoice(ctx context.Context, invoiceID string) (*models.GatewayResult, error) {
	return c.call(ctx, "receipts.check", map[string]interface{}{
		"id": invoiceID,
	})
}

// RequestCardToken tokenizes a card and asks the provider to send the
// verification SMS
func (c *Client) RequestCardToken(ctx context.Context, req *models.GatewayCardTokenRequest) (*models.GatewayResult, error) {
	created, err := c.call(ctx, "cards.create", map[string]interface{}{
		"card": map[string]interface{}{
			"number": req.CardNumber,
			"expire": req.ExpireDate,
		},
		"save": !req.IsTemporary,
	})
	if err != nil || !created.Success {
		return created, err
	}

	sent, err := c.call(ctx, "cards.get_verify_code", map[string]interface{}{
		"token": created.CardToken,
	})
	if err != nil || !sent.Success {
		return sent, err
	}

	return created, nil
}

// VerifyCardToken confirms card ownership with the SMS code
func (c *Client) VerifyCardToken(ctx context.Context, token, smsCode string) (*models.GatewayResult, error) {
	return c.call(ctx, "cards.verify", map[string]interface{}{
		"token": token,
		"code":  smsCode,
	})
}

// PayWithToken creates a receipt for the order and pays it with the token
func (c *Client) PayWithToken(ctx context.Context, req *models.GatewayTokenPaymentRequest) (*models.GatewayResult, error) {
	created, err := c.call(ctx, "receipts.create", map[string]interface{}{
		"amount": int64(req.Amount * tiyinPerSoum),
		"account": map[string]interface{}{
			"order_id": req.OrderID,
		},
	})
	if err != nil || !created.Success {
		return created, err
	}

	return c.call(ctx, "receipts.pay", map[string]interface{}{
		"id":    created.PaymentID,
		"token": req.CardToken,
	})
}

// DeleteCardToken removes a token on the provider side
func (c *Client) DeleteCardToken(ctx context.Context, token string) (*models.GatewayResult, error) {
	return c.call(ctx, "cards.remove", map[string]interface{}{
		"token": token,
	})
}

// CheckPayment fetches the state of a receipt
func (c *Client) CheckPayment(ctx context.Context, paymentID string) (*models.GatewayResult, error) {
	return c.call(ctx, "receipts.check", map[string]interface{}{
		"id": paymentID,
	})
}

// CheckPaymentByOrder is not offered by this provider's merchant API;
// receipts are addressed by receipt id only
func (c *Client) CheckPaymentByOrder(ctx context.Context, orderID, paymentDate string) (*models.GatewayResult, error) {
	return &models.GatewayResult{
		Success:   false,
		ErrorNote: "payme does not support status lookup by order",
	}, nil
}

// ReversePayment cancels a paid receipt
func (c *Client) ReversePayment(ctx context.Context, paymentID string) (*models.GatewayResult, error) {
	return c.call(ctx, "receipts.cancel", map[string]interface{}{
		"id": paymentID,
	})
}

// call performs one JSON-RPC request against the merchant API
func (c *Client) call(ctx context.Context, method string, params map[string]interface{}) (*models.GatewayResult, error) {
	reqBody, err := json.Marshal(rpcRequest{
		ID:     atomic.AddInt64(&c.seq, 1),
		Method: method,
		Params: params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rpc request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.client.BaseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Auth", fmt.Sprintf("%s:%s", c.cfg.MerchantID, c.cfg.Key))

	resp, err := c.client.HTTPClient.Do(httpReq)
	if err != nil {
		logger.Warn("Payme request failed",
			logger.String("method", method),
			logger.Err(err),
		)
		return &models.GatewayResult{Success: false, ErrorNote: "gateway unreachable"}, nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.GatewayResult{Success: false, ErrorNote: "failed to read gateway response"}, nil
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return &models.GatewayResult{Success: false, ErrorNote: "malformed gateway response"}, nil
	}

	if rpcResp.Error != nil {
		logger.Warn("Payme rejected request",
			logger.String("method", method),
			logger.Int("error_code", rpcResp.Error.Code),
			logger.String("error_note", rpcResp.Error.Message),
		)
		return &models.GatewayResult{
			Success:   false,
			ErrorCode: rpcResp.Error.Code,
			ErrorNote: rpcResp.Error.Message,
		}, nil
	}

	return &models.GatewayResult{
		Success:       true,
		InvoiceID:     rpcResp.Result.Receipt.ID,
		PaymentID:     rpcResp.Result.Receipt.ID,
		PaymentStatus: rpcResp.Result.Receipt.State,
		Confirmed:     rpcResp.Result.Receipt.State == receiptStatePaid,
		CardToken:     rpcResp.Result.Card.Token,
		CardNumber:    rpcResp.Result.Card.Number,
	}, nil
}
