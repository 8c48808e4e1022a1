package entities

import "time"

// Product represents a catalog entry. CreatedBy references the customer who
// created the record and never changes after insert.
type Product struct {
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
	CreatedByEmail string    `json:"created_by_email"` // joined from customers, not a column
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Decade returns the first and last year of the product's release decade.
// ok is false when the release year is unknown.
func (p *Product) Decade() (start, end int, ok bool) {
	if p.ReleaseYear == nil || *p.ReleaseYear <= 0 {
		return 0, 0, false
	}
	start = *p.ReleaseYear / 10 * 10
	return start, start + 9, true
}

// Image is an additional picture attached to a product.
type Image struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
