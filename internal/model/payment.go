package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an amount owed by a customer, settled through installments
type Payment struct {
	ID              int             `json:"id"`
	CustomerID      int             `json:"customerId"`
	UserID          int             `json:"userId"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Installments    int             `json:"installments"`
	Note            *string         `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Settled reports whether nothing remains to be paid
func (p *Payment) Settled() bool {
	return !p.RemainingAmount.IsPositive()
}

// Installment is a single partial payment against a Payment
type Installment struct {
	ID        int             `json:"id"`
	PaymentID int             `json:"paymentId"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paidAt"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note"`
}

type InstallmentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	PaidAt *time.Time      `json:"paidAt"`
}
