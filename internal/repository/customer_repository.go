package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
)

//go:generate mockgen -destination=mocks/repository_mock.go -package=mocks storefront-be/internal/repository CustomerRepository,ProductRepository,ImageRepository

// CustomerRepository defines the interface for customer database operations
type CustomerRepository interface {
	Create(ctx context.Context, email, passwordHash string, firstname, lastname *string) (*entities.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*entities.Customer, error)
	FindByID(ctx context.Context, id int64) (*entities.Customer, error)
	FindRecentlyViewed(ctx context.Context, customerID int64) ([]*entities.Product, error)
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, email, password_hash, is_admin, firstname, lastname, created_at, updated_at`

func scanCustomer(row scanner) (*entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(
		&c.ID,
		&c.Email,
		&c.PasswordHash,
		&c.IsAdmin,
		&c.Firstname,
		&c.Lastname,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer into the database
func (r *customerRepository) Create(ctx context.Context, email, passwordHash string, firstname, lastname *string) (*entities.Customer, error) {
	const op = "CustomerRepository.Create"
	query := `
		INSERT INTO customers (email, password_hash, firstname, lastname)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + customerColumns

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, email, passwordHash, firstname, lastname))
	if isUniqueViolation(err) {
		return nil, apperror.AlreadyExists("customer with email %s", email)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customer, nil
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "CustomerRepository.ExistsByEmail"

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// FindByEmail finds a customer by email
func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	const op = "CustomerRepository.FindByEmail"
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, email))
	if isNoRows(err) {
		return nil, apperror.NotFound("customer")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return customer, nil
}

// FindByID finds a customer by ID
func (r *customerRepository) FindByID(ctx context.Context, id int64) (*entities.Customer, error) {
	const op = "CustomerRepository.FindByID"
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if isNoRows(err) {
		return nil, apperror.NotFound("customer")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return customer, nil
}

// FindRecentlyViewed returns the customer's view history oldest first.
// A product viewed twice appears twice.
func (r *customerRepository) FindRecentlyViewed(ctx context.Context, customerID int64) ([]*entities.Product, error) {
	const op = "CustomerRepository.FindRecentlyViewed"
	query := productSelect + `
		JOIN recently_viewed rv ON rv.product_id = p.id
		WHERE rv.customer_id = $1
		ORDER BY rv.id ASC`

	products, err := queryProducts(ctx, r.db, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}
