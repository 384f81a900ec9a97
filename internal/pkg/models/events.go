package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent is published to NATS after a committed payment transition
type PaymentEvent struct {
	PaymentID uuid.UUID     `json:"payment_id"`
	OrderID   uuid.UUID     `json:"order_id"`
	UserID    uuid.UUID     `json:"user_id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Status    PaymentStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}
