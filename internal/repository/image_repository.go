package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront-be/internal/entities"
)

type ImageRepository interface {
	Create(ctx context.Context, productID int64, url string) (*entities.Image, error)
	FindByProductID(ctx context.Context, productID int64) ([]*entities.Image, error)
}

type imageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, productID int64, url string) (*entities.Image, error) {
	const op = "ImageRepository.Create"
	query := `
		INSERT INTO images (product_id, url)
		VALUES ($1, $2)
		RETURNING id, url, product_id, created_at
	`

	var img entities.Image
	err := r.db.QueryRowContext(ctx, query, productID, url).Scan(
		&img.ID,
		&img.URL,
		&img.ProductID,
		&img.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &img, nil
}

// FindByProductID lists images oldest first, empty for unknown products
func (r *imageRepository) FindByProductID(ctx context.Context, productID int64) ([]*entities.Image, error) {
	const op = "ImageRepository.FindByProductID"

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, url, product_id, created_at
		FROM images
		WHERE product_id = $1
		ORDER BY id ASC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get images: %w", op, err)
	}
	defer rows.Close()

	images := make([]*entities.Image, 0)
	for rows.Next() {
		var img entities.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.ProductID, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan image: %w", op, err)
		}
		images = append(images, &img)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating images: %w", op, err)
	}
	return images, nil
}
