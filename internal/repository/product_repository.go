package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
)

// ProductRepository defines the interface for product database operations
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entities.Product, error)
	FindByID(ctx context.Context, id int64) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) (*entities.Product, error)
	Delete(ctx context.Context, id int64) error
	RecordView(ctx context.Context, productID, customerID int64) error
	FindTopByViews(ctx context.Context, limit int) ([]*entities.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*entities.Product, error)
	SearchByName(ctx context.Context, term string) ([]*entities.Product, error)
	FindRecommendationsByCategory(ctx context.Context, category string, excludeID int64) ([]*entities.Product, error)
	FindRecommendationsByDecade(ctx context.Context, startYear, endYear int, excludeID int64) ([]*entities.Product, error)
	FindRecommendationsByDirector(ctx context.Context, director string, excludeID int64) ([]*entities.Product, error)
	UpdateImageURL(ctx context.Context, id int64, imageURL string) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `
	p.id, p.name, p.description, p.stock, p.price, p.category, p.image_url,
	p.views, p.director, p.release_year, p.created_by, c.email, p.created_at, p.updated_at`

const productSelect = `SELECT ` + productColumns + `
	FROM products p
	JOIN customers c ON c.id = p.created_by`

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanProduct(row scanner) (*entities.Product, error) {
	var p entities.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Stock,
		&p.Price,
		&p.Category,
		&p.ImageURL,
		&p.Views,
		&p.Director,
		&p.ReleaseYear,
		&p.CreatedBy,
		&p.CreatedByEmail,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func queryProducts(ctx context.Context, q querier, query string, args ...any) ([]*entities.Product, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]*entities.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entities.Product, error) {
	const op = "ProductRepository.FindAll"

	products, err := queryProducts(ctx, r.db, productSelect+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entities.Product, error) {
	const op = "ProductRepository.FindByID"

	product, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if isNoRows(err) {
		return nil, apperror.NotFound("product")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return product, nil
}

// Create inserts the product. Views always start at zero.
func (r *productRepository) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	const op = "ProductRepository.Create"
	query := `
		WITH inserted AS (
			INSERT INTO products (name, description, stock, price, category, image_url, director, release_year, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + productColumns + `
		FROM inserted p
		JOIN customers c ON c.id = p.created_by`

	created, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Stock,
		product.Price,
		product.Category,
		product.ImageURL,
		product.Director,
		product.ReleaseYear,
		product.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// Update overwrites the editable fields. created_by and views are left alone.
func (r *productRepository) Update(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	const op = "ProductRepository.Update"
	query := `
		WITH updated AS (
			UPDATE products
			SET name = $2, description = $3, stock = $4, price = $5, category = $6,
				image_url = $7, director = $8, release_year = $9, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + productColumns + `
		FROM updated p
		JOIN customers c ON c.id = p.created_by`

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Stock,
		product.Price,
		product.Category,
		product.ImageURL,
		product.Director,
		product.ReleaseYear,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("product")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	const op = "ProductRepository.Delete"

	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete product: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("product")
	}
	return nil
}

// RecordView increments the counter in SQL so concurrent views are not lost,
// and appends one history row in the same transaction.
func (r *productRepository) RecordView(ctx context.Context, productID, customerID int64) (err error) {
	const op = "ProductRepository.RecordView"

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, `UPDATE products SET views = views + 1 WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("%s: failed to increment views: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("product")
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO recently_viewed (customer_id, product_id) VALUES ($1, $2)`, customerID, productID)
	if err != nil {
		return fmt.Errorf("%s: failed to record history: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}
	return nil
}

func (r *productRepository) FindTopByViews(ctx context.Context, limit int) ([]*entities.Product, error) {
	const op = "ProductRepository.FindTopByViews"

	products, err := queryProducts(ctx, r.db, productSelect+` ORDER BY p.views DESC, p.id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (r *productRepository) FindByCategory(ctx context.Context, category string) ([]*entities.Product, error) {
	const op = "ProductRepository.FindByCategory"

	products, err := queryProducts(ctx, r.db, productSelect+` WHERE p.category = $1 ORDER BY p.id ASC`, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// SearchByName matches a case-insensitive substring of the name.
// LIKE wildcards in the term are matched literally.
func (r *productRepository) SearchByName(ctx context.Context, term string) ([]*entities.Product, error) {
	const op = "ProductRepository.SearchByName"

	products, err := queryProducts(ctx, r.db,
		productSelect+` WHERE p.name ILIKE '%' || $1 || '%' ORDER BY p.id ASC`,
		escapeLike(term),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (r *productRepository) FindRecommendationsByCategory(ctx context.Context, category string, excludeID int64) ([]*entities.Product, error) {
	const op = "ProductRepository.FindRecommendationsByCategory"

	products, err := queryProducts(ctx, r.db,
		productSelect+` WHERE p.category = $1 AND p.id <> $2 ORDER BY p.id ASC`,
		category, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (r *productRepository) FindRecommendationsByDecade(ctx context.Context, startYear, endYear int, excludeID int64) ([]*entities.Product, error) {
	const op = "ProductRepository.FindRecommendationsByDecade"

	products, err := queryProducts(ctx, r.db,
		productSelect+` WHERE p.release_year BETWEEN $1 AND $2 AND p.id <> $3 ORDER BY p.id ASC`,
		startYear, endYear, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

func (r *productRepository) FindRecommendationsByDirector(ctx context.Context, director string, excludeID int64) ([]*entities.Product, error) {
	const op = "ProductRepository.FindRecommendationsByDirector"

	products, err := queryProducts(ctx, r.db,
		productSelect+` WHERE p.director = $1 AND p.id <> $2 ORDER BY p.id ASC`,
		director, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// UpdateImageURL replaces the product's main image
func (r *productRepository) UpdateImageURL(ctx context.Context, id int64, imageURL string) error {
	const op = "ProductRepository.UpdateImageURL"

	result, err := r.db.ExecContext(ctx, `UPDATE products SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL)
	if err != nil {
		return fmt.Errorf("%s: failed to update image: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("product")
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
