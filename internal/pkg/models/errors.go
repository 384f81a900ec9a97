package models

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotPending     = errors.New("order is not pending")
	ErrOrderNotOwned       = errors.New("order does not belong to caller")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentExists       = errors.New("order already has a payment")
	ErrInvalidPaymentState = errors.New("payment state does not permit this transition")
	ErrCardNotFound        = errors.New("card token not found or not verified")
	ErrCardVerifyFailed    = errors.New("card verification failed")
	ErrTooManyAttempts     = errors.New("too many verification attempts")
	ErrUnsupportedMethod   = errors.New("unsupported payment method")
	ErrGatewayUnavailable  = errors.New("payment gateway request failed")
)
