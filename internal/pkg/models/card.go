package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedCard is a tokenized card reference. A card is unusable for payment
// until SMS verification activates it; CardNumber is only populated after
// verification succeeds.
type SavedCard struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	UserID      uuid.UUID     `json:"user_id" db:"user_id"`
	Method      PaymentMethod `json:"method" db:"method"`
	CardToken   string        `json:"-" db:"card_token"`
	MaskedPAN   string        `json:"masked_pan" db:"masked_pan"`
	CardNumber  *string       `json:"-" db:"card_number"`
	PhoneNumber string        `json:"phone_number" db:"phone_number"`
	IsTemporary bool          `json:"is_temporary" db:"is_temporary"`
	IsActive    bool          `json:"is_active" db:"is_active"`
	LastUsedAt  *time.Time    `json:"last_used_at" db:"last_used_at"`
	IsDeleted   bool          `json:"-" db:"is_deleted"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// CardTokenRequest is the caller-facing request to tokenize a card
type CardTokenRequest struct {
	Method      PaymentMethod `json:"method"`
	CardNumber  string        `json:"card_number"`
	ExpireDate  string        `json:"expire_date"`
	PhoneNumber string        `json:"phone_number"`
	IsTemporary bool          `json:"is_temporary"`
}

// CardVerifyRequest carries the SMS code confirming card ownership
type CardVerifyRequest struct {
	CardID  uuid.UUID `json:"card_id"`
	SMSCode string    `json:"sms_code"`
}
