package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"business_manager/internal/i18n"
	"business_manager/internal/model"
	"business_manager/internal/repository"

	"github.com/shopspring/decimal"
)

// PaymentService defines operations for payments and installments.
// Writes are owner-only; admins may read any customer's payments.
type PaymentService interface {
	Create(ctx context.Context, customerID, userID int, req model.CreatePaymentRequest) (*model.Payment, error)
	ListByCustomer(ctx context.Context, customerID, userID int, userRole string) ([]model.Payment, error)
	RecordInstallment(ctx context.Context, paymentID, userID int, req model.InstallmentRequest) (*model.Installment, *model.Payment, error)
	ListInstallments(ctx context.Context, paymentID, userID int, userRole string) ([]model.Installment, error)
}

type paymentService struct {
	payments  repository.PaymentRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(payments repository.PaymentRepository, customers repository.CustomerRepository) PaymentService {
	return &paymentService{payments: payments, customers: customers, now: time.Now}
}

func (s *paymentService) customer(ctx context.Context, customerID, userID int, userRole string) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if customer.UserID != userID && userRole != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return customer, nil
}

func (s *paymentService) payment(ctx context.Context, paymentID, userID int, userRole string) (*model.Payment, error) {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment by ID: %w", err)
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.UserID != userID && userRole != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return payment, nil
}

// Create opens a payment for a customer; the full amount starts out as remaining
func (s *paymentService) Create(ctx context.Context, customerID, userID int, req model.CreatePaymentRequest) (*model.Payment, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}
	if _, err := s.customer(ctx, customerID, userID, ""); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		CustomerID:     customerID,
		UserID:         userID,
		OriginalAmount: req.Amount,
		Note:           optional(req.Note),
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment in repo: %w", err)
	}
	return payment, nil
}

func (s *paymentService) ListByCustomer(ctx context.Context, customerID, userID int, userRole string) ([]model.Payment, error) {
	if _, err := s.customer(ctx, customerID, userID, userRole); err != nil {
		return nil, err
	}
	payments, err := s.payments.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer payments from repo: %w", err)
	}
	return payments, nil
}

// RecordInstallment pays part of a payment. The amount must be positive and
// no larger than what remains; paidAt defaults to now.
func (s *paymentService) RecordInstallment(ctx context.Context, paymentID, userID int, req model.InstallmentRequest) (*model.Installment, *model.Payment, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, nil, err
	}
	if _, err := s.payment(ctx, paymentID, userID, ""); err != nil {
		return nil, nil, err
	}

	paidAt := s.now()
	if req.PaidAt != nil && !req.PaidAt.IsZero() {
		paidAt = *req.PaidAt
	}

	inst, payment, err := s.payments.RecordInstallment(ctx, paymentID, req.Amount, paidAt)
	if err != nil {
		if errors.Is(err, repository.ErrExceedsRemaining) {
			return nil, nil, ErrOverpayment
		}
		return nil, nil, fmt.Errorf("failed to record installment in repo: %w", err)
	}
	if inst == nil {
		return nil, nil, ErrPaymentNotFound
	}
	return inst, payment, nil
}

func (s *paymentService) ListInstallments(ctx context.Context, paymentID, userID int, userRole string) ([]model.Installment, error) {
	if _, err := s.payment(ctx, paymentID, userID, userRole); err != nil {
		return nil, err
	}
	installments, err := s.payments.FindInstallments(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installments from repo: %w", err)
	}
	return installments, nil
}

// maxAmount is the first value NUMERIC(14,2) cannot hold
var maxAmount = decimal.New(1, 12)

// checkAmount accepts positive amounts below maxAmount with at most two decimal places
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Fields: []string{"amount"}}
	}
	if !amount.LessThan(maxAmount) || !amount.Equal(amount.Round(2)) {
		return &ValidationError{Fields: []string{"amount"}, Reason: i18n.MsgInvalidAmount}
	}
	return nil
}
