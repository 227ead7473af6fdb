package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vendormax/apiserver/types"
)

const purchaseDateLayout = "2006-01-02"

// Validation errors surfaced when the expiry date cannot be derived.
var (
	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrInvalidWarrantyPeriod = errors.New("invalid warranty period")
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	List(ctx context.Context) ([]types.Product, error)
	Get(ctx context.Context, id int) (types.Product, error)
	Create(ctx context.Context, product types.Product) (types.Product, error)
	Update(ctx context.Context, product types.Product) (types.Product, error)
	Delete(ctx context.Context, id int) error
}

// ProductService encapsulates product use-cases. It owns the expiry-date
// invariant: expiry is always recomputed from the purchase date and warranty
// period before a product reaches persistence, so a client-supplied expiry
// date never survives.
type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context) ([]types.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int) (types.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, product types.Product) (types.Product, error) {
	expiry, err := deriveExpiryDate(product.PurchaseDate, product.WarrantyPeriod)
	if err != nil {
		return types.Product{}, err
	}
	product.ExpiryDate = expiry
	return s.repo.Create(ctx, product)
}

func (s *ProductService) Update(ctx context.Context, product types.Product) (types.Product, error) {
	expiry, err := deriveExpiryDate(product.PurchaseDate, product.WarrantyPeriod)
	if err != nil {
		return types.Product{}, err
	}
	product.ExpiryDate = expiry
	return s.repo.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// deriveExpiryDate adds the warranty period, in months, to the purchase date.
func deriveExpiryDate(purchaseDate, warrantyPeriod string) (string, error) {
	purchased, err := time.Parse(purchaseDateLayout, strings.TrimSpace(purchaseDate))
	if err != nil {
		return "", ErrInvalidPurchaseDate
	}

	months, err := strconv.Atoi(strings.TrimSpace(warrantyPeriod))
	if err != nil || months < 0 {
		return "", ErrInvalidWarrantyPeriod
	}

	return purchased.AddDate(0, months, 0).Format(purchaseDateLayout), nil
}
