package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the immutable monthly bill snapshot for a room. Line items never
// change after creation; only the payment-status fields mutate.
type Invoice struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	RoomID         string          `json:"room_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	BillingMonth   int             `json:"billing_month" gorm:"not null" validate:"required,min=1,max=12"`
	BillingYear    int             `json:"billing_year" gorm:"not null" validate:"required,min=2000"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"not null;type:numeric(14,2)"`
	AmountPaid     decimal.Decimal `json:"amount_paid" gorm:"type:numeric(14,2);default:0"`
	IsPaid         bool            `json:"is_paid" gorm:"default:false"`
	TransferMethod *TransferMethod `json:"transfer_method,omitempty" gorm:"type:varchar(20)"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Room    *Room            `json:"room,omitempty" gorm:"foreignKey:RoomID;references:ID"`
	Details []*InvoiceDetail `json:"details,omitempty" gorm:"foreignKey:InvoiceID;references:ID"`
}

// InvoiceDetail is one line item of an invoice. UnitCost is snapshotted at
// invoice-creation time so historical invoices survive later tariff changes.
type InvoiceDetail struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	InvoiceID       string          `json:"invoice_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ServiceID       *string         `json:"service_id,omitempty" gorm:"index;type:uuid"` // nil for the rent line
	Description     string          `json:"description"`
	UnitCost        decimal.Decimal `json:"unit_cost" gorm:"not null;type:numeric(14,2)"`
	ActualCost      decimal.Decimal `json:"actual_cost" gorm:"not null;type:numeric(14,2)"`
	PreviousReading float64         `json:"previous_reading,omitempty"`
	CurrentReading  float64         `json:"current_reading,omitempty"`
	IsRentRoom      bool            `json:"is_rent_room" gorm:"default:false"`
	BillingDate     time.Time       `json:"billing_date" gorm:"not null;type:date"`

	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;references:ID"`
}

// Balance returns the amount still owed on the invoice.
func (i *Invoice) Balance() decimal.Decimal {
	return i.TotalAmount.Sub(i.AmountPaid)
}

// ApplyPayment records a payment against the invoice and flips the paid flag
// once the full amount is covered.
func (i *Invoice) ApplyPayment(amount decimal.Decimal, method TransferMethod) {
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.TransferMethod = &method
	if i.AmountPaid.GreaterThanOrEqual(i.TotalAmount) {
		i.IsPaid = true
	}
}

// SumDetails returns the sum of the line items' actual costs.
func (i *Invoice) SumDetails() decimal.Decimal {
	total := decimal.Zero
	for _, d := range i.Details {
		total = total.Add(d.ActualCost)
	}
	return total
}
