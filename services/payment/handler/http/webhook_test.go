package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment/mocks"
)

func newWebhookContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/click/prepare", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWebhookPrepare_AlwaysRespondsOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	orderID := uuid.New().String()
	body := `{"transId":555001,"serviceId":777,"merchantTransId":"` + orderID + `","amount":15000.50,"action":0,"signTime":"2026-08-23 12:00:00","signString":"aabbccdd"}`

	mockUC.EXPECT().HandlePrepare(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.WebhookRequest) *models.PrepareResponse {
			assert.Equal(t, int64(555001), req.TransID)
			assert.Equal(t, orderID, req.MerchantTransID)
			return &models.PrepareResponse{
				TransID:         req.TransID,
				MerchantTransID: req.MerchantTransID,
				PrepareID:       42,
			}
		})

	c, rec := newWebhookContext(t, body)
	require.NoError(t, handler.Prepare(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PrepareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.PrepareID)
	assert.Equal(t, models.WebhookCodeSuccess, resp.Error)
}

func TestWebhookPrepare_ProtocolErrorStillOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	mockUC.EXPECT().HandlePrepare(gomock.Any(), gomock.Any()).
		Return(&models.PrepareResponse{Error: models.WebhookCodeInvalidSignature, ErrorNote: "invalid signature"})

	c, rec := newWebhookContext(t, `{"transId":1,"merchantTransId":"x","signString":"bad"}`)
	require.NoError(t, handler.Prepare(c))

	// Protocol errors ride inside a 200 body, never an HTTP error status
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PrepareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.WebhookCodeInvalidSignature, resp.Error)
}

func TestWebhookPrepare_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	c, rec := newWebhookContext(t, `{"transId":"not-a-number"}`)
	require.NoError(t, handler.Prepare(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PrepareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.WebhookCodeInternalError, resp.Error)
}

func TestWebhookComplete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	orderID := uuid.New().String()
	body := `{"transId":555001,"serviceId":777,"merchantTransId":"` + orderID + `","amount":15000.50,"action":1,"signTime":"2026-08-23 12:05:00","signString":"aabbccdd","prepareId":42}`

	mockUC.EXPECT().HandleComplete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.WebhookRequest) *models.CompleteResponse {
			assert.Equal(t, models.WebhookActionComplete, req.Action)
			assert.Equal(t, int64(42), req.PrepareID)
			return &models.CompleteResponse{
				TransID:         req.TransID,
				MerchantTransID: req.MerchantTransID,
				ConfirmID:       42,
			}
		})

	c, rec := newWebhookContext(t, body)
	require.NoError(t, handler.Complete(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.CompleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ConfirmID)
	assert.Equal(t, models.WebhookCodeSuccess, resp.Error)
}

func TestWebhookComplete_FormEncodedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewWebhookHandler(mockUC)

	orderID := uuid.New().String()
	form := "transId=555001&serviceId=777&merchantTransId=" + orderID + "&amount=15000.50&action=1&signTime=2026-08-23+12:05:00&signString=aabbccdd"

	mockUC.EXPECT().HandleComplete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.WebhookRequest) *models.CompleteResponse {
			assert.Equal(t, int64(555001), req.TransID)
			assert.Equal(t, 15000.50, req.Amount)
			return &models.CompleteResponse{TransID: req.TransID, ConfirmID: 42}
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/click/complete", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Complete(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
