package controllers

import (
	"net/http"

	"storefront-be/internal/models"
	"storefront-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
	authService    service.AuthService
}

func NewProductController(productService service.ProductService, authService service.AuthService) *ProductController {
	return &ProductController{
		productService: productService,
		authService:    authService,
	}
}

// GetAllProducts handles GET /api/v1/products
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /api/v1/products/:id
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := pc.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := pc.productService.CreateProduct(c.Request.Context(), customer, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/:id
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := pc.productService.UpdateProduct(c.Request.Context(), customer, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	if err := pc.productService.DeleteProduct(c.Request.Context(), customer, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ViewProduct handles POST /api/v1/products/:id/view
func (pc *ProductController) ViewProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	if err := pc.productService.ViewProduct(c.Request.Context(), customer, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFeaturedProducts handles GET /api/v1/products/featured
func (pc *ProductController) GetFeaturedProducts(c *gin.Context) {
	products, err := pc.productService.GetFeaturedProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductsByCategory handles GET /api/v1/products/category/:category
func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	products, err := pc.productService.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetRecentlyViewedProducts handles GET /api/v1/products/recently-viewed
func (pc *ProductController) GetRecentlyViewedProducts(c *gin.Context) {
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	products, err := pc.productService.GetRecentlyViewedProducts(c.Request.Context(), customer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /api/v1/products/search?name=
func (pc *ProductController) SearchProducts(c *gin.Context) {
	products, err := pc.productService.SearchProductsByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetRecommendations handles GET /api/v1/products/:id/recommendations
func (pc *ProductController) GetRecommendations(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	products, err := pc.productService.GetRecommendations(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetImages handles GET /api/v1/products/:id/images
func (pc *ProductController) GetImages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	images, err := pc.productService.GetImagesByProductID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// AddImage handles POST /api/v1/products/:id/images
func (pc *ProductController) AddImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	image, err := pc.productService.AddImageToProduct(c.Request.Context(), customer, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// ChangeImage handles PUT /api/v1/products/:id/image
func (pc *ProductController) ChangeImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, ok := currentCustomer(c, pc.authService)
	if !ok {
		return
	}

	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := pc.productService.ChangeImageOfProduct(c.Request.Context(), customer, id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
