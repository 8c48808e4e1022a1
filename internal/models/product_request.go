package models

// ProductRequest is the body of create and update calls.
// Views and creator are never taken from the client.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category" binding:"required,notblank"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
	Director    *string `json:"director,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty" binding:"omitempty,gte=1800,lte=3000"`
}

// ImageRequest is the body of add-image and change-image calls
type ImageRequest struct {
	URL string `json:"url" binding:"required,url"`
}
