package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
	"storefront-be/internal/jwt"
	"storefront-be/internal/models"
	"storefront-be/internal/repository/mocks"
)

const testSecret = "test-secret-with-enough-bytes-for-hs256"

func newAuthFixture(t *testing.T) (*mocks.MockCustomerRepository, *jwt.JWTService, AuthService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomerRepository(ctrl)
	jwtService := jwt.NewJWTService(testSecret, 2*time.Hour)
	svc := &authService{customerRepo: repo, jwtService: jwtService, hashCost: bcrypt.MinCost}
	return repo, jwtService, svc
}

func strPtr(s string) *string { return &s }

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "new@shop.test").Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), "new@shop.test", gomock.Any(), gomock.Nil(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, email, hash string, _, _ *string) (*entities.Customer, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
				return &entities.Customer{ID: 1, Email: email, PasswordHash: hash}, nil
			})

		resp, err := svc.Signup(ctxBg, &models.SignupRequest{Email: " New@Shop.test ", Password: strPtr("secret")})
		require.NoError(t, err)
		assert.Equal(t, "The user was created.", resp.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "a@shop.test").Return(true, nil)

		_, err := svc.Signup(ctxBg, &models.SignupRequest{Email: "a@shop.test", Password: strPtr("secret")})
		assert.ErrorIs(t, err, apperror.ErrAlreadyExists)
	})

	t.Run("missing password", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "a@shop.test").Return(false, nil)

		_, err := svc.Signup(ctxBg, &models.SignupRequest{Email: "a@shop.test"})
		assert.ErrorIs(t, err, apperror.ErrBadRequest)
	})

	t.Run("store failure", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().ExistsByEmail(gomock.Any(), "a@shop.test").Return(false, errStore)

		_, err := svc.Signup(ctxBg, &models.SignupRequest{Email: "a@shop.test", Password: strPtr("secret")})
		assert.ErrorIs(t, err, errStore)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entities.Customer{ID: 7, Email: "a@shop.test", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo, jwtService, svc := newAuthFixture(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@shop.test").Return(stored, nil)

		resp, err := svc.Login(ctxBg, &models.LoginRequest{Email: "A@shop.test", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, int64(7200), resp.ExpiresIn)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		id, err := claims.CustomerID()
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@shop.test").Return(stored, nil)

		_, err := svc.Login(ctxBg, &models.LoginRequest{Email: "a@shop.test", Password: "nope"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().FindByEmail(gomock.Any(), "x@shop.test").Return(nil, apperror.NotFound("customer"))

		_, err := svc.Login(ctxBg, &models.LoginRequest{Email: "x@shop.test", Password: "secret"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestGetAuthenticatedCustomer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(adminA, nil)

		c, err := svc.GetAuthenticatedCustomer(ctxBg, 1)
		require.NoError(t, err)
		assert.True(t, c.IsAdmin)
	})

	t.Run("deleted account", func(t *testing.T) {
		repo, _, svc := newAuthFixture(t)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, apperror.NotFound("customer"))

		_, err := svc.GetAuthenticatedCustomer(ctxBg, 1)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestGetCustomerInfo(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	info := svc.GetCustomerInfo(&entities.Customer{ID: 4, Email: "c@shop.test", PasswordHash: "x", Firstname: strPtr("Ada")})
	assert.Equal(t, int64(4), info.ID)
	assert.Equal(t, "Ada", *info.Firstname)
	assert.False(t, info.IsAdmin)
}
