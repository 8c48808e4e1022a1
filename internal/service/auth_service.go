package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
	"storefront-be/internal/jwt"
	"storefront-be/internal/models"
	"storefront-be/internal/repository"
)

//go:generate mockgen -destination=mocks/service_mock.go -package=mocks storefront-be/internal/service AuthService,ProductService

const signupMessage = "The user was created."

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponseDTO, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponseDTO, error)
	// GetAuthenticatedCustomer resolves the identity carried by the request token
	GetAuthenticatedCustomer(ctx context.Context, customerID int64) (*entities.Customer, error)
	GetCustomerInfo(customer *entities.Customer) *models.CustomerInfoDTO
}

type authService struct {
	customerRepo repository.CustomerRepository
	jwtService   *jwt.JWTService
	hashCost     int
}

// NewAuthService creates a new auth service
func NewAuthService(customerRepo repository.CustomerRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		customerRepo: customerRepo,
		jwtService:   jwtService,
		hashCost:     bcrypt.DefaultCost,
	}
}

// Signup creates a new customer account. New accounts are never admins.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.AlreadyExists("customer with email %s", email)
	}

	if req.Password == nil || *req.Password == "" {
		return nil, apperror.BadRequest("password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer, err := s.customerRepo.Create(ctx, email, string(hashedPassword), req.Firstname, req.Lastname)
	if err != nil {
		return nil, err
	}

	slog.Info("customer signed up", "customer_id", customer.ID)
	return &models.SignupResponseDTO{Message: signupMessage}, nil
}

// Login verifies the credentials and issues a bearer token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(customer.ID, customer.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponseDTO{
		Token:     token,
		ExpiresIn: int64(s.jwtService.TTL().Seconds()),
	}, nil
}

func (s *authService) GetAuthenticatedCustomer(ctx context.Context, customerID int64) (*entities.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.Unauthorized("customer no longer exists")
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *authService) GetCustomerInfo(customer *entities.Customer) *models.CustomerInfoDTO {
	return models.NewCustomerInfoDTO(customer)
}
