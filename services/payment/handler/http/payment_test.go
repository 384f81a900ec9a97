package http

import (
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
	"github.com/bekzodtm/shoppay/internal/utils"
	"github.com/bekzodtm/shoppay/services/payment/mocks"
)

func newAuthedContext(t *testing.T, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestCreateInvoiceHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	userID := uuid.New()
	orderID := uuid.New()
	body := `{"order_id":"` + orderID.String() + `","method":"CLICK","phone_number":"+998901234567"}`

	expected := &models.Payment{
		ID:      uuid.New(),
		OrderID: orderID,
		UserID:  userID,
		Amount:  25000,
		Method:  models.PaymentMethodClick,
		Status:  models.PaymentStatusPending,
	}
	mockUC.EXPECT().CreateInvoice(gomock.Any(), userID, gomock.Any()).Return(expected, nil)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/payments/invoice", body, userID)
	require.NoError(t, handler.CreateInvoice(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCreateInvoiceHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/invoice", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.CreateInvoice(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateInvoiceHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"order not found", models.ErrOrderNotFound, http.StatusNotFound},
		{"order not owned", models.ErrOrderNotOwned, http.StatusForbidden},
		{"order not pending", models.ErrOrderNotPending, http.StatusConflict},
		{"payment exists", models.ErrPaymentExists, http.StatusConflict},
		{"gateway unavailable", models.ErrGatewayUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockPaymentUC(ctrl)
			handler := NewPaymentHandler(mockUC)

			userID := uuid.New()
			body := `{"order_id":"` + uuid.New().String() + `","method":"CLICK"}`
			mockUC.EXPECT().CreateInvoice(gomock.Any(), userID, gomock.Any()).Return(nil, tc.err)

			c, rec := newAuthedContext(t, http.MethodPost, "/v1/payments/invoice", body, userID)
			require.NoError(t, handler.CreateInvoice(c))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestPayWithCardHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	userID := uuid.New()
	body := `{"order_id":"` + uuid.New().String() + `","card_id":"` + uuid.New().String() + `"}`

	mockUC.EXPECT().PayWithSavedCard(gomock.Any(), userID, gomock.Any()).
		Return(&models.Payment{ID: uuid.New(), Status: models.PaymentStatusSuccess}, nil)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/payments/card", body, userID)
	require.NoError(t, handler.PayWithCard(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetOrderPaymentHandler_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/orders/abc/payment", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetOrderPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderPaymentHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	orderID := uuid.New()
	mockUC.EXPECT().GetOrderPayment(gomock.Any(), orderID).
		Return(&models.Payment{ID: uuid.New(), OrderID: orderID, Status: models.PaymentStatusSuccess}, nil)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/orders/"+orderID.String()+"/payment", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, handler.GetOrderPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelPaymentHandler_InvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	orderID := uuid.New()
	mockUC.EXPECT().CancelPayment(gomock.Any(), orderID).Return(models.ErrInvalidPaymentState)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/orders/"+orderID.String()+"/payment/cancel", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, handler.CancelPayment(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
