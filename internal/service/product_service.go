package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"storefront-be/internal/apperror"
	"storefront-be/internal/cache"
	"storefront-be/internal/entities"
	"storefront-be/internal/models"
	"storefront-be/internal/policy"
	"storefront-be/internal/repository"
)

// FeaturedLimit is how many products the featured listing returns
const FeaturedLimit = 10

// ProductService defines the catalog operations. Mutating calls take the
// authenticated customer explicitly and enforce the product policy.
type ProductService interface {
	GetAllProducts(ctx context.Context) ([]*models.ProductDTO, error)
	GetProductByID(ctx context.Context, id int64) (*models.ProductDTO, error)
	CreateProduct(ctx context.Context, actor *entities.Customer, req *models.ProductRequest) (*models.ProductDTO, error)
	UpdateProduct(ctx context.Context, actor *entities.Customer, id int64, req *models.ProductRequest) (*models.ProductDTO, error)
	DeleteProduct(ctx context.Context, actor *entities.Customer, id int64) error
	ViewProduct(ctx context.Context, actor *entities.Customer, id int64) error
	GetFeaturedProducts(ctx context.Context) ([]*models.ProductDTO, error)
	GetProductsByCategory(ctx context.Context, category string) ([]*models.ProductDTO, error)
	GetRecentlyViewedProducts(ctx context.Context, actor *entities.Customer) ([]*models.ProductDTO, error)
	SearchProductsByName(ctx context.Context, partialName string) ([]*models.ProductDTO, error)
	GetRecommendations(ctx context.Context, id int64) ([]*models.ProductDTO, error)
	GetImagesByProductID(ctx context.Context, productID int64) ([]*models.ImageDTO, error)
	AddImageToProduct(ctx context.Context, actor *entities.Customer, productID int64, req *models.ImageRequest) (*models.ImageDTO, error)
	ChangeImageOfProduct(ctx context.Context, actor *entities.Customer, productID int64, req *models.ImageRequest) error
}

type productService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	imageRepo    repository.ImageRepository
	cache        cache.Cache
	featuredTTL  time.Duration
}

// NewProductService creates a new product service. cacheClient may be nil.
func NewProductService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	imageRepo repository.ImageRepository,
	cacheClient cache.Cache,
	featuredTTL time.Duration,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		imageRepo:    imageRepo,
		cache:        cacheClient,
		featuredTTL:  featuredTTL,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]*models.ProductDTO, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewProductDTOs(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.NewProductDTO(product), nil
}

// CreateProduct requires admin. The caller becomes the creator.
func (s *productService) CreateProduct(ctx context.Context, actor *entities.Customer, req *models.ProductRequest) (*models.ProductDTO, error) {
	admin, err := policy.AssertAdmin(actor)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &entities.Product{CreatedBy: admin.ID}
	applyProductRequest(product, req)

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)
	slog.Info("product created", "product_id", created.ID, "created_by", admin.ID)
	return models.NewProductDTO(created), nil
}

func (s *productService) UpdateProduct(ctx context.Context, actor *entities.Customer, id int64, req *models.ProductRequest) (*models.ProductDTO, error) {
	product, err := s.loadForMutation(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	applyProductRequest(product, req)

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateFeatured(ctx)
	return models.NewProductDTO(updated), nil
}

func (s *productService) DeleteProduct(ctx context.Context, actor *entities.Customer, id int64) error {
	if _, err := s.loadForMutation(ctx, actor, id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFeatured(ctx)
	slog.Info("product deleted", "product_id", id, "deleted_by", actor.ID)
	return nil
}

// ViewProduct bumps the view counter by one and appends the product to the
// caller's history. Repeated views append repeatedly.
func (s *productService) ViewProduct(ctx context.Context, actor *entities.Customer, id int64) error {
	if err := policy.AssertAuthenticated(actor); err != nil {
		return err
	}
	return s.productRepo.RecordView(ctx, id, actor.ID)
}

// GetFeaturedProducts returns the most viewed products, served from cache
// when one is configured.
func (s *productService) GetFeaturedProducts(ctx context.Context) ([]*models.ProductDTO, error) {
	if s.cache != nil {
		var cached []*models.ProductDTO
		err := s.cache.GetJSON(ctx, cache.FeaturedProductsKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("featured cache read failed", "err", err)
		}
	}

	products, err := s.productRepo.FindTopByViews(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	dtos := models.NewProductDTOs(products)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.FeaturedProductsKey, dtos, s.featuredTTL); err != nil {
			slog.Warn("featured cache write failed", "err", err)
		}
	}
	return dtos, nil
}

func (s *productService) GetProductsByCategory(ctx context.Context, category string) ([]*models.ProductDTO, error) {
	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return models.NewProductDTOs(products), nil
}

func (s *productService) GetRecentlyViewedProducts(ctx context.Context, actor *entities.Customer) ([]*models.ProductDTO, error) {
	if err := policy.AssertAuthenticated(actor); err != nil {
		return nil, err
	}
	products, err := s.customerRepo.FindRecentlyViewed(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return models.NewProductDTOs(products), nil
}

func (s *productService) SearchProductsByName(ctx context.Context, partialName string) ([]*models.ProductDTO, error) {
	term := strings.TrimSpace(partialName)
	if term == "" {
		return nil, apperror.BadRequest("search term is required")
	}

	products, err := s.productRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return models.NewProductDTOs(products), nil
}

// GetRecommendations merges products sharing the category, the release
// decade or the director. Each product appears once, first match wins, and
// the source product is never included.
func (s *productService) GetRecommendations(ctx context.Context, id int64) ([]*models.ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := map[int64]struct{}{product.ID: {}}
	merged := make([]*entities.Product, 0)
	add := func(candidates []*entities.Product) {
		for _, c := range candidates {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			merged = append(merged, c)
		}
	}

	if product.Category != "" {
		byCategory, err := s.productRepo.FindRecommendationsByCategory(ctx, product.Category, product.ID)
		if err != nil {
			return nil, err
		}
		add(byCategory)
	}

	if start, end, ok := product.Decade(); ok {
		byDecade, err := s.productRepo.FindRecommendationsByDecade(ctx, start, end, product.ID)
		if err != nil {
			return nil, err
		}
		add(byDecade)
	}

	if product.Director != nil && strings.TrimSpace(*product.Director) != "" {
		byDirector, err := s.productRepo.FindRecommendationsByDirector(ctx, *product.Director, product.ID)
		if err != nil {
			return nil, err
		}
		add(byDirector)
	}

	return models.NewProductDTOs(merged), nil
}

func (s *productService) GetImagesByProductID(ctx context.Context, productID int64) ([]*models.ImageDTO, error) {
	images, err := s.imageRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return models.NewImageDTOs(images), nil
}

func (s *productService) AddImageToProduct(ctx context.Context, actor *entities.Customer, productID int64, req *models.ImageRequest) (*models.ImageDTO, error) {
	product, err := s.loadForMutation(ctx, actor, productID)
	if err != nil {
		return nil, err
	}
	url, err := imageURL(req)
	if err != nil {
		return nil, err
	}

	img, err := s.imageRepo.Create(ctx, product.ID, url)
	if err != nil {
		return nil, err
	}
	return models.NewImageDTO(img), nil
}

// ChangeImageOfProduct replaces the product's main image URL
func (s *productService) ChangeImageOfProduct(ctx context.Context, actor *entities.Customer, productID int64, req *models.ImageRequest) error {
	product, err := s.loadForMutation(ctx, actor, productID)
	if err != nil {
		return err
	}
	url, err := imageURL(req)
	if err != nil {
		return err
	}

	if err := s.productRepo.UpdateImageURL(ctx, product.ID, url); err != nil {
		return err
	}

	s.invalidateFeatured(ctx)
	return nil
}

// loadForMutation checks admin first, then existence, then ownership, so a
// non-admin never learns whether an id exists.
func (s *productService) loadForMutation(ctx context.Context, actor *entities.Customer, id int64) (*entities.Product, error) {
	if _, err := policy.AssertAdmin(actor); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.AssertCanMutate(product, actor); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.FeaturedProductsKey); err != nil {
		slog.Warn("featured cache invalidation failed", "err", err)
	}
}

func validateProduct(req *models.ProductRequest) error {
	switch {
	case req == nil:
		return apperror.BadRequest("product body is required")
	case strings.TrimSpace(req.Name) == "":
		return apperror.BadRequest("name is required")
	case strings.TrimSpace(req.Category) == "":
		return apperror.BadRequest("category is required")
	case req.Stock < 0:
		return apperror.BadRequest("stock cannot be negative")
	case req.Price < 0:
		return apperror.BadRequest("price cannot be negative")
	}
	return nil
}

func applyProductRequest(p *entities.Product, req *models.ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.Stock = req.Stock
	p.Price = req.Price
	p.Category = strings.TrimSpace(req.Category)
	p.ImageURL = req.ImageURL
	p.Director = req.Director
	p.ReleaseYear = req.ReleaseYear
}

func imageURL(req *models.ImageRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.URL) == "" {
		return "", apperror.BadRequest("image url is required")
	}
	return strings.TrimSpace(req.URL), nil
}
