package models

import (
	"time"

	"storefront-be/internal/entities"
)

type ProductDTO struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Stock          int       `json:"stock"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	ImageURL       string    `json:"image_url"`
	Views          int       `json:"views"`
	Director       *string   `json:"director,omitempty"`
	ReleaseYear    *int      `json:"release_year,omitempty"`
	CreatedBy      int64     `json:"created_by"`
	CreatedByEmail string    `json:"created_by_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ImageDTO struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	ProductID int64  `json:"product_id"`
}

// NewProductDTO converts a product entity to its response shape
func NewProductDTO(p *entities.Product) *ProductDTO {
	return &ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Stock:          p.Stock,
		Price:          p.Price,
		Category:       p.Category,
		ImageURL:       p.ImageURL,
		Views:          p.Views,
		Director:       p.Director,
		ReleaseYear:    p.ReleaseYear,
		CreatedBy:      p.CreatedBy,
		CreatedByEmail: p.CreatedByEmail,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// NewProductDTOs never returns nil so empty lists encode as [].
func NewProductDTOs(products []*entities.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = NewProductDTO(p)
	}
	return dtos
}

func NewImageDTO(img *entities.Image) *ImageDTO {
	return &ImageDTO{
		ID:        img.ID,
		URL:       img.URL,
		ProductID: img.ProductID,
	}
}

func NewImageDTOs(images []*entities.Image) []*ImageDTO {
	dtos := make([]*ImageDTO, len(images))
	for i, img := range images {
		dtos[i] = NewImageDTO(img)
	}
	return dtos
}

func NewCustomerInfoDTO(c *entities.Customer) *CustomerInfoDTO {
	return &CustomerInfoDTO{
		ID:        c.ID,
		Email:     c.Email,
		Firstname: c.Firstname,
		Lastname:  c.Lastname,
		IsAdmin:   c.IsAdmin,
		CreatedAt: c.CreatedAt,
	}
}
