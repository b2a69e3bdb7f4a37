package repository

import (
	"context"
	"errors"
	"fmt"

	"business_manager/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// CustomerRepository defines operations for customer data
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id int) (*model.Customer, error)
	FindByUser(ctx context.Context, userID int) ([]model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int) error
}

type customerRepository struct {
	db DBTX
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db DBTX) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, user_id, name, email, phone, address, created_at, updated_at`

func scanCustomer(row rowScanner) (*model.Customer, error) {
	var (
		c                     model.Customer
		email, phone, address pgtype.Text
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &email, &phone, &address, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Email = textPtr(email)
	c.Phone = textPtr(phone)
	c.Address = textPtr(address)
	return &c, nil
}

// Create inserts a customer and fills in generated fields
func (r *customerRepository) Create(ctx context.Context, c *model.Customer) error {
	sql := `INSERT INTO customers (user_id, name, email, phone, address)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, c.UserID, c.Name, c.Email, c.Phone, c.Address).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// FindByID retrieves a customer by its ID
func (r *customerRepository) FindByID(ctx context.Context, id int) (*model.Customer, error) {
	sql := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}
	return c, nil
}

// FindByUser lists the customers owned by userID, newest first
func (r *customerRepository) FindByUser(ctx context.Context, userID int) ([]model.Customer, error) {
	sql := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers by user: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// Update rewrites the mutable customer fields
func (r *customerRepository) Update(ctx context.Context, c *model.Customer) error {
	sql := `UPDATE customers
            SET name = $1, email = $2, phone = $3, address = $4, updated_at = NOW()
            WHERE id = $5 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, c.Name, c.Email, c.Phone, c.Address, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("customer %d not found for update", c.ID)
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// Delete removes a customer together with its payments (cascade)
func (r *customerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found for deletion", id)
	}
	return nil
}
