package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
	"storefront-be/internal/middleware"
	"storefront-be/internal/models"
	"storefront-be/internal/service/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var admin = &entities.Customer{ID: 1, Email: "admin@shop.test", IsAdmin: true}

// authenticatedAs stands in for AuthMiddleware
func authenticatedAs(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCustomerID(c, id)
		c.Next()
	}
}

type harness struct {
	auth     *mocks.MockAuthService
	products *mocks.MockProductService
	router   *gin.Engine
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		auth:     mocks.NewMockAuthService(ctrl),
		products: mocks.NewMockProductService(ctrl),
		router:   gin.New(),
	}

	ac := NewAuthController(h.auth)
	pc := NewProductController(h.products, h.auth)
	qc := NewQRCodeController(h.products, "https://shop.example.com")

	api := h.router.Group("/api/v1")
	api.POST("/auth/signup", ac.Signup)
	api.POST("/auth/login", ac.Login)
	api.GET("/products/:id/qrcode", qc.GenerateQRCode)
	api.GET("/anonymous/me", ac.Me)

	protected := api.Group("", authenticatedAs(admin.ID))
	protected.GET("/auth/me", ac.Me)
	protected.GET("/products", pc.GetAllProducts)
	protected.GET("/products/featured", pc.GetFeaturedProducts)
	protected.GET("/products/recently-viewed", pc.GetRecentlyViewedProducts)
	protected.GET("/products/search", pc.SearchProducts)
	protected.GET("/products/category/:category", pc.GetProductsByCategory)
	protected.GET("/products/:id", pc.GetProductByID)
	protected.POST("/products", pc.CreateProduct)
	protected.PUT("/products/:id", pc.UpdateProduct)
	protected.DELETE("/products/:id", pc.DeleteProduct)
	protected.POST("/products/:id/view", pc.ViewProduct)
	protected.GET("/products/:id/recommendations", pc.GetRecommendations)
	protected.GET("/products/:id/images", pc.GetImages)
	protected.POST("/products/:id/images", pc.AddImage)
	protected.PUT("/products/:id/image", pc.ChangeImage)
	return h
}

func (h *harness) expectAdmin() {
	h.auth.EXPECT().GetAuthenticatedCustomer(gomock.Any(), admin.ID).Return(admin, nil)
}

func (h *harness) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperror.NotFound("product"), http.StatusNotFound},
		{apperror.AccessDenied("no"), http.StatusForbidden},
		{apperror.AlreadyExists("customer %s", "x"), http.StatusConflict},
		{apperror.BadRequest("bad"), http.StatusBadRequest},
		{apperror.Unauthorized("who"), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestSignupHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := newHarness(t)
		h.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(&models.SignupResponseDTO{Message: "The user was created."}, nil)

		w := h.do(http.MethodPost, "/api/v1/auth/signup", map[string]string{"email": "new@shop.test", "password": "secret"})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"The user was created."}`, w.Body.String())
	})

	t.Run("duplicate", func(t *testing.T) {
		h := newHarness(t)
		h.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).
			Return(nil, apperror.AlreadyExists("customer with email %s", "a@shop.test"))

		w := h.do(http.MethodPost, "/api/v1/auth/signup", map[string]string{"email": "a@shop.test", "password": "secret"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newHarness(t)

		w := h.do(http.MethodPost, "/api/v1/auth/signup", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "details")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := newHarness(t)
		h.auth.EXPECT().Login(gomock.Any(), &models.LoginRequest{Email: "a@shop.test", Password: "secret"}).
			Return(&models.LoginResponseDTO{Token: "tok", ExpiresIn: 3600}, nil)

		w := h.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "a@shop.test", "password": "secret"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"tok","expires_in":3600}`, w.Body.String())
	})

	t.Run("bad credentials", func(t *testing.T) {
		h := newHarness(t)
		h.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperror.Unauthorized("invalid email or password"))

		w := h.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "a@shop.test", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.auth.EXPECT().GetCustomerInfo(admin).Return(&models.CustomerInfoDTO{ID: admin.ID, Email: admin.Email, IsAdmin: true})

		w := h.do(http.MethodGet, "/api/v1/auth/me", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_admin":true`)
	})

	t.Run("no identity in context", func(t *testing.T) {
		h := newHarness(t)

		w := h.do(http.MethodGet, "/api/v1/anonymous/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("account removed", func(t *testing.T) {
		h := newHarness(t)
		h.auth.EXPECT().GetAuthenticatedCustomer(gomock.Any(), admin.ID).Return(nil, apperror.Unauthorized("customer no longer exists"))

		w := h.do(http.MethodGet, "/api/v1/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProductReadHandlers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetAllProducts(gomock.Any()).Return([]*models.ProductDTO{{ID: 1, Name: "Product A"}}, nil)

		w := h.do(http.MethodGet, "/api/v1/products", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Product A")
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetFeaturedProducts(gomock.Any()).Return([]*models.ProductDTO{}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/featured", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("get missing", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetProductByID(gomock.Any(), int64(9)).Return(nil, apperror.NotFound("product"))

		w := h.do(http.MethodGet, "/api/v1/products/9", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "product not found", errorMessage(t, w))
	})

	t.Run("invalid id", func(t *testing.T) {
		h := newHarness(t)

		w := h.do(http.MethodGet, "/api/v1/products/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("category", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetProductsByCategory(gomock.Any(), "Movies").Return([]*models.ProductDTO{}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/category/Movies", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("search", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().SearchProductsByName(gomock.Any(), "prod").Return([]*models.ProductDTO{{ID: 1, Name: "Product A"}}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/search?name=prod", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Product A")
	})

	t.Run("search without term", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().SearchProductsByName(gomock.Any(), "").Return(nil, apperror.BadRequest("search term is required"))

		w := h.do(http.MethodGet, "/api/v1/products/search", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("recently viewed", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().GetRecentlyViewedProducts(gomock.Any(), admin).
			Return([]*models.ProductDTO{{ID: 1}, {ID: 1}}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/recently-viewed", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var got []models.ProductDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("recommendations", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetRecommendations(gomock.Any(), int64(1)).Return([]*models.ProductDTO{{ID: 2}}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/1/recommendations", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("images", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetImagesByProductID(gomock.Any(), int64(1)).
			Return([]*models.ImageDTO{{ID: 1, URL: "http://example.com/image.jpg", ProductID: 1}}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/1/images", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "image.jpg")
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetAllProducts(gomock.Any()).Return(nil, errors.New("pq: connection refused"))

		w := h.do(http.MethodGet, "/api/v1/products", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}

func TestProductWriteHandlers(t *testing.T) {
	body := map[string]any{"name": "Product A", "stock": 1, "price": 9.5, "category": "Electronics"}

	t.Run("create", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().CreateProduct(gomock.Any(), admin, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *entities.Customer, req *models.ProductRequest) (*models.ProductDTO, error) {
				return &models.ProductDTO{ID: 1, Name: req.Name, CreatedBy: admin.ID}, nil
			})

		w := h.do(http.MethodPost, "/api/v1/products", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"created_by":1`)
	})

	t.Run("create with blank name", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()

		w := h.do(http.MethodPost, "/api/v1/products", map[string]any{"name": "   ", "category": "Electronics"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create with negative price", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()

		w := h.do(http.MethodPost, "/api/v1/products", map[string]any{"name": "A", "category": "B", "price": -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update by another admin", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().UpdateProduct(gomock.Any(), admin, int64(3), gomock.Any()).
			Return(nil, apperror.AccessDenied("you are not the creator of this product"))

		w := h.do(http.MethodPut, "/api/v1/products/3", body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().DeleteProduct(gomock.Any(), admin, int64(3)).Return(nil)

		w := h.do(http.MethodDelete, "/api/v1/products/3", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("view", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().ViewProduct(gomock.Any(), admin, int64(3)).Return(nil)

		w := h.do(http.MethodPost, "/api/v1/products/3/view", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("add image", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().AddImageToProduct(gomock.Any(), admin, int64(3), &models.ImageRequest{URL: "http://example.com/a.jpg"}).
			Return(&models.ImageDTO{ID: 4, URL: "http://example.com/a.jpg", ProductID: 3}, nil)

		w := h.do(http.MethodPost, "/api/v1/products/3/images", map[string]string{"url": "http://example.com/a.jpg"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("add image with invalid url", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()

		w := h.do(http.MethodPost, "/api/v1/products/3/images", map[string]string{"url": "not a url"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("change image", func(t *testing.T) {
		h := newHarness(t)
		h.expectAdmin()
		h.products.EXPECT().ChangeImageOfProduct(gomock.Any(), admin, int64(3), gomock.Any()).Return(nil)

		w := h.do(http.MethodPut, "/api/v1/products/3/image", map[string]string{"url": "http://example.com/b.jpg"})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestQRCodeHandler(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(&models.ProductDTO{ID: 5}, nil)

		w := h.do(http.MethodGet, "/api/v1/products/5/qrcode", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("missing product", func(t *testing.T) {
		h := newHarness(t)
		h.products.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(nil, apperror.NotFound("product"))

		w := h.do(http.MethodGet, "/api/v1/products/5/qrcode", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("link", func(t *testing.T) {
		qc := NewQRCodeController(nil, "https://shop.example.com")
		assert.Equal(t, "https://shop.example.com/products/5", qc.ProductLink(5))
	})
}
