// Package policy decides what the current customer may do with a product.
//
// Create needs admin. Update, delete and image changes need admin and
// creator of that specific product. Reads only need an identity.
package policy

import (
	"storefront-be/internal/apperror"
	"storefront-be/internal/entities"
)

const (
	reasonNotAdmin   = "only administrators can perform this action"
	reasonNotCreator = "you are not the creator of this product"
	reasonAnonymous  = "no authenticated customer"
)

// AssertAdmin returns the customer unchanged when it carries the admin flag.
func AssertAdmin(customer *entities.Customer) (*entities.Customer, error) {
	if customer == nil {
		return nil, apperror.AccessDenied(reasonAnonymous)
	}
	if !customer.IsAdmin {
		return nil, apperror.AccessDenied(reasonNotAdmin)
	}
	return customer, nil
}

func AssertIsCreator(product *entities.Product, customer *entities.Customer) error {
	if customer == nil {
		return apperror.AccessDenied(reasonAnonymous)
	}
	if product.CreatedBy != customer.ID {
		return apperror.AccessDenied(reasonNotCreator)
	}
	return nil
}

// AssertCanMutate combines both checks for an already loaded product.
func AssertCanMutate(product *entities.Product, customer *entities.Customer) error {
	if _, err := AssertAdmin(customer); err != nil {
		return err
	}
	return AssertIsCreator(product, customer)
}

func AssertAuthenticated(customer *entities.Customer) error {
	if customer == nil {
		return apperror.AccessDenied(reasonAnonymous)
	}
	return nil
}
