package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment/mocks"
)

func TestRequestTokenHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewCardHandler(mockUC)

	userID := uuid.New()
	body := `{"method":"CLICK","card_number":"8600123456781234","expire_date":"0329","phone_number":"+998901234567"}`

	mockUC.EXPECT().RequestCardToken(gomock.Any(), userID, gomock.Any()).
		Return(&models.SavedCard{ID: uuid.New(), UserID: userID, MaskedPAN: "860012******1234"}, nil)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/cards", body, userID)
	require.NoError(t, handler.RequestToken(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestVerifyHandler_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewCardHandler(mockUC)

	userID := uuid.New()
	body := `{"card_id":"` + uuid.New().String() + `","sms_code":"000000"}`

	mockUC.EXPECT().VerifyCard(gomock.Any(), userID, gomock.Any()).
		Return(nil, models.ErrCardVerifyFailed)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/cards/verify", body, userID)
	require.NoError(t, handler.Verify(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyHandler_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewCardHandler(mockUC)

	userID := uuid.New()
	body := `{"card_id":"` + uuid.New().String() + `","sms_code":"000000"}`

	mockUC.EXPECT().VerifyCard(gomock.Any(), userID, gomock.Any()).
		Return(nil, models.ErrTooManyAttempts)

	c, rec := newAuthedContext(t, http.MethodPost, "/v1/cards/verify", body, userID)
	require.NoError(t, handler.Verify(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewCardHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().ListCards(gomock.Any(), userID).
		Return([]*models.SavedCard{{ID: uuid.New(), UserID: userID, IsActive: true}}, nil)

	c, rec := newAuthedContext(t, http.MethodGet, "/v1/cards", "", userID)
	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewCardHandler(mockUC)

	userID := uuid.New()
	cardID := uuid.New()

	mockUC.EXPECT().DeleteCard(gomock.Any(), userID, cardID).Return(models.ErrCardNotFound)

	c, rec := newAuthedContext(t, http.MethodDelete, "/v1/cards/"+cardID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(cardID.String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
