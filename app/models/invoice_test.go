package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceApplyPayment(t *testing.T) {
	invoice := &Invoice{TotalAmount: decimal.NewFromInt(500000)}

	invoice.ApplyPayment(decimal.NewFromInt(200000), TransferCash)
	assert.False(t, invoice.IsPaid)
	assert.True(t, invoice.Balance().Equal(decimal.NewFromInt(300000)))

	invoice.ApplyPayment(decimal.NewFromInt(300000), TransferBank)
	assert.True(t, invoice.IsPaid)
	assert.True(t, invoice.Balance().IsZero())
	assert.Equal(t, TransferBank, *invoice.TransferMethod)
}

func TestInvoiceOverpaymentStillPaid(t *testing.T) {
	invoice := &Invoice{TotalAmount: decimal.NewFromInt(100000)}

	invoice.ApplyPayment(decimal.NewFromInt(150000), TransferWallet)
	assert.True(t, invoice.IsPaid)
	assert.True(t, invoice.Balance().Equal(decimal.NewFromInt(-50000)))
}

func TestInvoiceSumDetails(t *testing.T) {
	invoice := &Invoice{
		Details: []*InvoiceDetail{
			{ActualCost: decimal.NewFromInt(175000)},
			{ActualCost: decimal.NewFromInt(60000)},
			{ActualCost: decimal.NewFromInt(2000000), IsRentRoom: true},
		},
	}

	assert.True(t, invoice.SumDetails().Equal(decimal.NewFromInt(2235000)))
}
