package payme

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/bekzodtm/shoppay/internal/pkg/http"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := models.PaymeConfig{
		BaseURL:        server.URL,
		MerchantID:     "merchant-1",
		Key:            "test-key",
		TimeoutSeconds: 2,
	}
	return &Client{
		cfg:    cfg,
		client: httpclient.NewClient(server.URL, 2*time.Second),
	}
}

func TestCreateInvoice_AmountConvertedToTiyin(t *testing.T) {
	var gotReq rpcRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "merchant-1:test-key", r.Header.Get("X-Auth"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, `{"result":{"receipt":{"_id":"rcpt-1","state":0}}}`)
	})

	result, err := client.CreateInvoice(context.Background(), &models.GatewayInvoiceRequest{
		OrderID: "order-1",
		Amount:  15000.50,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "rcpt-1", result.InvoiceID)
	assert.False(t, result.Confirmed)

	assert.Equal(t, "receipts.create", gotReq.Method)
	assert.Equal(t, float64(1500050), gotReq.Params["amount"])
}

func TestCheckPayment_PaidState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"receipt":{"_id":"rcpt-1","state":4}}}`)
	})

	result, err := client.CheckPayment(context.Background(), "rcpt-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Confirmed)
}

func TestCall_RPCErrorFoldedIntoResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":-31050,"message":"card expired"}}`)
	})

	result, err := client.VerifyCardToken(context.Background(), "tok-1", "123456")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, -31050, result.ErrorCode)
	assert.Equal(t, "card expired", result.ErrorNote)
}

func TestRequestCardToken_CreatesTokenAndSendsCode(t *testing.T) {
	var methods []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		methods = append(methods, req.Method)

		switch req.Method {
		case "cards.create":
			fmt.Fprint(w, `{"result":{"card":{"number":"860012******1234","token":"tok-abc","verify":false}}}`)
		case "cards.get_verify_code":
			fmt.Fprint(w, `{"result":{"sent":true}}`)
		default:
			t.Fatalf("unexpected method %s", req.Method)
		}
	})

	result, err := client.RequestCardToken(context.Background(), &models.GatewayCardTokenRequest{
		CardNumber: "8600123456781234",
		ExpireDate: "0329",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "tok-abc", result.CardToken)
	assert.Equal(t, []string{"cards.create", "cards.get_verify_code"}, methods)
}

func TestPayWithToken_CreatesThenPaysReceipt(t *testing.T) {
	var methods []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		methods = append(methods, req.Method)

		switch req.Method {
		case "receipts.create":
			fmt.Fprint(w, `{"result":{"receipt":{"_id":"rcpt-1","state":0}}}`)
		case "receipts.pay":
			assert.Equal(t, "rcpt-1", req.Params["id"])
			assert.Equal(t, "tok-abc", req.Params["token"])
			fmt.Fprint(w, `{"result":{"receipt":{"_id":"rcpt-1","state":4}}}`)
		default:
			t.Fatalf("unexpected method %s", req.Method)
		}
	})

	result, err := client.PayWithToken(context.Background(), &models.GatewayTokenPaymentRequest{
		CardToken: "tok-abc",
		OrderID:   "order-1",
		Amount:    15000.50,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Confirmed)
	assert.Equal(t, []string{"receipts.create", "receipts.pay"}, methods)
}

func TestCheckPaymentByOrder_Unsupported(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	result, err := client.CheckPaymentByOrder(context.Background(), "order-1", "2026-08-23")

	require.NoError(t, err)
	assert.False(t, result.Success)
}
