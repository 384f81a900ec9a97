package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bekzodtm/shoppay/internal/pkg/constants"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment/mocks"
)

type paymentFixture struct {
	repo      *mocks.MockPaymentRepo
	factory   *mocks.MockProviderFactory
	provider  *mocks.MockPaymentProvider
	verifier  *mocks.MockSignatureVerifier
	publisher *mocks.MockEventPublisher
	uc        *PaymentUC
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &paymentFixture{
		repo:      mocks.NewMockPaymentRepo(ctrl),
		factory:   mocks.NewMockProviderFactory(ctrl),
		provider:  mocks.NewMockPaymentProvider(ctrl),
		verifier:  mocks.NewMockSignatureVerifier(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	f.uc = NewPaymentUC(&models.Config{}, f.repo, f.factory, f.verifier, f.publisher)
	return f
}

func TestCreateInvoice_Success(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	order := pendingOrder(userID, 25000)
	req := &models.CreateInvoiceRequest{
		OrderID:     order.ID,
		Method:      models.PaymentMethodClick,
		PhoneNumber: "+998901234567",
	}

	f.repo.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), order.ID).Return(nil, models.ErrPaymentNotFound)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(&models.GatewayResult{Success: true, InvoiceID: "998877"}, nil)
	f.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), false).
		DoAndReturn(func(_ context.Context, p *models.Payment, txn *models.Transaction, _ bool) error {
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			assert.Equal(t, "998877", p.ExternalTransID)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			return nil
		})
	f.publisher.EXPECT().PublishJSON(constants.SubjectPaymentPrepared, gomock.Any()).Return(nil)

	pmt, err := f.uc.CreateInvoice(context.Background(), userID, req)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, pmt.Status)
	assert.Equal(t, order.TotalAmount, pmt.Amount)
}

func TestCreateInvoice_OrderNotOwned(t *testing.T) {
	f := newPaymentFixture(t)
	order := pendingOrder(uuid.New(), 25000)
	req := &models.CreateInvoiceRequest{OrderID: order.ID, Method: models.PaymentMethodClick}

	f.repo.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)

	pmt, err := f.uc.CreateInvoice(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, models.ErrOrderNotOwned)
	assert.Nil(t, pmt)
}

func TestCreateInvoice_PaymentAlreadyExists(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	order := pendingOrder(userID, 25000)
	req := &models.CreateInvoiceRequest{OrderID: order.ID, Method: models.PaymentMethodClick}

	existing := &models.Payment{ID: uuid.New(), OrderID: order.ID, Status: models.PaymentStatusPending}

	f.repo.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), order.ID).Return(existing, nil)

	pmt, err := f.uc.CreateInvoice(context.Background(), userID, req)

	assert.ErrorIs(t, err, models.ErrPaymentExists)
	assert.Nil(t, pmt)
}

func TestCreateInvoice_GatewayRejection(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	order := pendingOrder(userID, 25000)
	req := &models.CreateInvoiceRequest{OrderID: order.ID, Method: models.PaymentMethodClick}

	// No CreatePayment expectation: a rejected invoice leaves storage untouched
	f.repo.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), order.ID).Return(nil, models.ErrPaymentNotFound)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		Return(&models.GatewayResult{Success: false, ErrorNote: "invalid phone"}, nil)

	pmt, err := f.uc.CreateInvoice(context.Background(), userID, req)

	assert.ErrorIs(t, err, models.ErrGatewayUnavailable)
	assert.Nil(t, pmt)
}

func TestPayWithSavedCard_Success(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	order := pendingOrder(userID, 25000)
	card := &models.SavedCard{
		ID:        uuid.New(),
		UserID:    userID,
		Method:    models.PaymentMethodClick,
		CardToken: "tok-abc",
		IsActive:  true,
	}
	req := &models.TokenPaymentRequest{OrderID: order.ID, CardID: card.ID}

	f.repo.EXPECT().GetCardByID(gomock.Any(), userID, card.ID).Return(card, nil)
	f.repo.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), order.ID).Return(nil, models.ErrPaymentNotFound)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().PayWithToken(gomock.Any(), gomock.Any()).
		Return(&models.GatewayResult{Success: true, PaymentID: "555", PaymentStatus: 2, Confirmed: true}, nil)
	f.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, p *models.Payment, _ *models.Transaction, _ bool) error {
			assert.Equal(t, models.PaymentStatusSuccess, p.Status)
			assert.Equal(t, "555", p.ExternalTransID)
			return nil
		})
	f.publisher.EXPECT().PublishJSON(constants.SubjectPaymentCompleted, gomock.Any()).Return(nil)
	f.repo.EXPECT().TouchCardUsage(gomock.Any(), card.ID).Return(nil)

	pmt, err := f.uc.PayWithSavedCard(context.Background(), userID, req)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, pmt.Status)
}

func TestPayWithSavedCard_UsageBookkeepingFailureIgnored(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	order := pendingOrder(userID, 25000)
	card := &models.SavedCard{
		ID:        uuid.New(),
		UserID:    userID,
		Method:    models.PaymentMethodClick,
		CardToken: "tok-abc",
		IsActive:  true,
	}
	req := &models.TokenPaymentRequest{OrderID: order.ID, CardID: card.ID}

	f.repo.EXPECT().GetCardByID(gomock.Any(), userID, card.ID).Return(card, nil)
	f.repo.EXPECT().GetOrderByID(gomock.Any(), order.ID).Return(order, nil)
	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), order.ID).Return(nil, models.ErrPaymentNotFound)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().PayWithToken(gomock.Any(), gomock.Any()).
		Return(&models.GatewayResult{Success: true, PaymentID: "555", Confirmed: true}, nil)
	f.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil)
	f.publisher.EXPECT().PublishJSON(constants.SubjectPaymentCompleted, gomock.Any()).Return(nil)
	f.repo.EXPECT().TouchCardUsage(gomock.Any(), card.ID).Return(errors.New("connection reset"))

	pmt, err := f.uc.PayWithSavedCard(context.Background(), userID, req)

	// The charge is committed; the bookkeeping failure is logged only
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, pmt.Status)
}

func TestPayWithSavedCard_UnverifiedCardRejected(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	card := &models.SavedCard{
		ID:        uuid.New(),
		UserID:    userID,
		Method:    models.PaymentMethodClick,
		CardToken: "tok-abc",
		IsActive:  false,
	}
	req := &models.TokenPaymentRequest{OrderID: uuid.New(), CardID: card.ID}

	f.repo.EXPECT().GetCardByID(gomock.Any(), userID, card.ID).Return(card, nil)

	pmt, err := f.uc.PayWithSavedCard(context.Background(), userID, req)

	assert.ErrorIs(t, err, models.ErrCardNotFound)
	assert.Nil(t, pmt)
}

func TestCancelPayment_Success(t *testing.T) {
	f := newPaymentFixture(t)
	orderID := uuid.New()
	pmt := &models.Payment{
		ID:              uuid.New(),
		OrderID:         orderID,
		UserID:          uuid.New(),
		Amount:          25000,
		Method:          models.PaymentMethodClick,
		Status:          models.PaymentStatusSuccess,
		ExternalTransID: "555",
	}
	cancelled := &models.Payment{ID: pmt.ID, OrderID: orderID, Status: models.PaymentStatusCancelled}

	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), orderID).Return(pmt, nil)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().ReversePayment(gomock.Any(), "555").
		Return(&models.GatewayResult{Success: true}, nil)
	f.repo.EXPECT().CancelPayment(gomock.Any(), orderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, txn *models.Transaction) (*models.Payment, error) {
			assert.Equal(t, models.TransactionTypeRefund, txn.Type)
			assert.Equal(t, pmt.Amount, txn.Amount)
			return cancelled, nil
		})
	f.publisher.EXPECT().PublishJSON(constants.SubjectPaymentCancelled, gomock.Any()).Return(nil)

	err := f.uc.CancelPayment(context.Background(), orderID)

	assert.NoError(t, err)
}

func TestCancelPayment_PendingPaymentRejected(t *testing.T) {
	f := newPaymentFixture(t)
	orderID := uuid.New()
	pmt := &models.Payment{ID: uuid.New(), OrderID: orderID, Status: models.PaymentStatusPending}

	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), orderID).Return(pmt, nil)

	err := f.uc.CancelPayment(context.Background(), orderID)

	assert.ErrorIs(t, err, models.ErrInvalidPaymentState)
}

func TestCancelPayment_ReversalFailureLeavesStateUntouched(t *testing.T) {
	f := newPaymentFixture(t)
	orderID := uuid.New()
	pmt := &models.Payment{
		ID:              uuid.New(),
		OrderID:         orderID,
		Method:          models.PaymentMethodClick,
		Status:          models.PaymentStatusSuccess,
		ExternalTransID: "555",
	}

	// No repo.CancelPayment expectation: a rejected reversal must not mutate
	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), orderID).Return(pmt, nil)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().ReversePayment(gomock.Any(), "555").
		Return(&models.GatewayResult{Success: false, ErrorNote: "reversal window closed"}, nil)

	err := f.uc.CancelPayment(context.Background(), orderID)

	assert.ErrorIs(t, err, models.ErrGatewayUnavailable)
}

func TestCancelPayment_ReversalTransportFailure(t *testing.T) {
	f := newPaymentFixture(t)
	orderID := uuid.New()
	pmt := &models.Payment{
		ID:              uuid.New(),
		OrderID:         orderID,
		Method:          models.PaymentMethodClick,
		Status:          models.PaymentStatusSuccess,
		ExternalTransID: "555",
	}

	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), orderID).Return(pmt, nil)
	f.factory.EXPECT().ProviderFor(models.PaymentMethodClick).Return(f.provider, nil)
	f.provider.EXPECT().ReversePayment(gomock.Any(), "555").Return(nil, errors.New("context deadline exceeded"))

	err := f.uc.CancelPayment(context.Background(), orderID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reverse payment")
}

func TestGetOrderPayment_NotFound(t *testing.T) {
	f := newPaymentFixture(t)
	orderID := uuid.New()

	f.repo.EXPECT().GetPaymentByOrderID(gomock.Any(), orderID).Return(nil, models.ErrPaymentNotFound)

	pmt, err := f.uc.GetOrderPayment(context.Background(), orderID)

	assert.ErrorIs(t, err, models.ErrPaymentNotFound)
	assert.Nil(t, pmt)
}
