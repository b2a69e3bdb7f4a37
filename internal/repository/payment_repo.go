package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"business_manager/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ErrExceedsRemaining is returned when an installment is larger than what is still owed
var ErrExceedsRemaining = errors.New("installment exceeds remaining amount")

// PaymentRepository defines operations for payments and their installments
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id int) (*model.Payment, error)
	FindByCustomer(ctx context.Context, customerID int) ([]model.Payment, error)
	RecordInstallment(ctx context.Context, paymentID int, amount decimal.Decimal, paidAt time.Time) (*model.Installment, *model.Payment, error)
	FindInstallments(ctx context.Context, paymentID int) ([]model.Installment, error)
}

type paymentRepository struct {
	db DBTX
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DBTX) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, customer_id, user_id, original_amount, remaining_amount, installments, note, created_at, updated_at`

func scanPayment(row rowScanner) (*model.Payment, error) {
	var (
		p    model.Payment
		note pgtype.Text
	)
	if err := row.Scan(&p.ID, &p.CustomerID, &p.UserID, &p.OriginalAmount, &p.RemainingAmount,
		&p.Installments, &note, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Note = textPtr(note)
	return &p, nil
}

// Create inserts a payment; remaining starts equal to the original amount
func (r *paymentRepository) Create(ctx context.Context, p *model.Payment) error {
	sql := `INSERT INTO payments (customer_id, user_id, original_amount, remaining_amount, installments, note)
            VALUES ($1, $2, $3, $3, 0, $4) RETURNING id, remaining_amount, installments, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, p.CustomerID, p.UserID, p.OriginalAmount, p.Note).
		Scan(&p.ID, &p.RemainingAmount, &p.Installments, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// FindByID retrieves a payment by its ID
func (r *paymentRepository) FindByID(ctx context.Context, id int) (*model.Payment, error) {
	sql := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find payment by ID: %w", err)
	}
	return p, nil
}

// FindByCustomer lists the payments of a customer, newest first
func (r *paymentRepository) FindByCustomer(ctx context.Context, customerID int) ([]model.Payment, error) {
	sql := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by customer: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// RecordInstallment locks the payment row, checks the balance, stores the
// installment and decrements the remaining amount in one transaction.
// A missing payment yields (nil, nil, nil).
func (r *paymentRepository) RecordInstallment(ctx context.Context, paymentID int, amount decimal.Decimal, paidAt time.Time) (*model.Installment, *model.Payment, error) {
	var (
		inst    *model.Installment
		payment *model.Payment
	)
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var remaining decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT remaining_amount FROM payments WHERE id = $1 FOR UPDATE`, paymentID).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return pgx.ErrNoRows
			}
			return fmt.Errorf("failed to lock payment: %w", err)
		}
		if amount.GreaterThan(remaining) {
			return ErrExceedsRemaining
		}

		inst = &model.Installment{PaymentID: paymentID, Amount: amount, PaidAt: paidAt}
		err = tx.QueryRow(ctx,
			`INSERT INTO installments (payment_id, amount, paid_at) VALUES ($1, $2, $3) RETURNING id, created_at`,
			paymentID, amount, paidAt).Scan(&inst.ID, &inst.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert installment: %w", err)
		}

		payment, err = scanPayment(tx.QueryRow(ctx,
			`UPDATE payments
             SET remaining_amount = remaining_amount - $1, installments = installments + 1, updated_at = NOW()
             WHERE id = $2 RETURNING `+paymentColumns,
			amount, paymentID))
		if err != nil {
			return fmt.Errorf("failed to update payment balance: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		if errors.Is(err, ErrExceedsRemaining) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to record installment: %w", err)
	}
	return inst, payment, nil
}

// FindInstallments lists the installments of a payment in the order they were paid
func (r *paymentRepository) FindInstallments(ctx context.Context, paymentID int) ([]model.Installment, error) {
	sql := `SELECT id, payment_id, amount, paid_at, created_at FROM installments WHERE payment_id = $1 ORDER BY paid_at, id`
	rows, err := r.db.Query(ctx, sql, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	installments := []model.Installment{}
	for rows.Next() {
		var i model.Installment
		if err := rows.Scan(&i.ID, &i.PaymentID, &i.Amount, &i.PaidAt, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		installments = append(installments, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", err)
	}
	return installments, nil
}
