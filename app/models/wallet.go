package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds a user's prepaid balance, topped up through the payment
// gateway and debited by membership purchases.
type Wallet struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID    string          `json:"user_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	Balance   decimal.Decimal `json:"balance" gorm:"not null;type:numeric(14,2);default:0"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// WalletTransaction records one wallet movement. OrderCode ties a pending
// deposit to the gateway webhook that settles it; the unique index on it is
// what makes webhook delivery idempotent.
type WalletTransaction struct {
	ID        string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	WalletID  string            `json:"wallet_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	OrderCode string            `json:"order_code,omitempty" gorm:"uniqueIndex"`
	Type      TransactionType   `json:"type" gorm:"not null;type:varchar(20)" validate:"required"`
	Status    TransactionStatus `json:"status" gorm:"not null;default:'pending';type:varchar(20)"`
	Amount    decimal.Decimal   `json:"amount" gorm:"not null;type:numeric(14,2)" validate:"required"`
	Note      string            `json:"note,omitempty"`
	CreatedAt time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	Wallet *Wallet `json:"wallet,omitempty" gorm:"foreignKey:WalletID;references:ID"`
}
