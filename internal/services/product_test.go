package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vendormax/apiserver/types"
)

type fakeProductRepo struct {
	created types.Product
	updated types.Product
}

func (f *fakeProductRepo) List(ctx context.Context) ([]types.Product, error) { return nil, nil }
func (f *fakeProductRepo) Get(ctx context.Context, id int) (types.Product, error) {
	return types.Product{}, nil
}
func (f *fakeProductRepo) Create(ctx context.Context, product types.Product) (types.Product, error) {
	product.ID = 1
	f.created = product
	return product, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, product types.Product) (types.Product, error) {
	f.updated = product
	return product, nil
}
func (f *fakeProductRepo) Delete(ctx context.Context, id int) error { return nil }

func TestDeriveExpiryDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		purchaseDate   string
		warrantyPeriod string
		want           string
		wantErr        error
	}{
		{name: "twelve months", purchaseDate: "2024-01-15", warrantyPeriod: "12", want: "2025-01-15"},
		{name: "zero months", purchaseDate: "2024-01-15", warrantyPeriod: "0", want: "2024-01-15"},
		{name: "six months", purchaseDate: "2023-08-31", warrantyPeriod: "6", want: "2024-03-02"},
		{name: "whitespace tolerated", purchaseDate: " 2024-01-15 ", warrantyPeriod: " 12 ", want: "2025-01-15"},
		{name: "bad date", purchaseDate: "15/01/2024", warrantyPeriod: "12", wantErr: ErrInvalidPurchaseDate},
		{name: "bad months", purchaseDate: "2024-01-15", warrantyPeriod: "a year", wantErr: ErrInvalidWarrantyPeriod},
		{name: "negative months", purchaseDate: "2024-01-15", warrantyPeriod: "-3", wantErr: ErrInvalidWarrantyPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deriveExpiryDate(tt.purchaseDate, tt.warrantyPeriod)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("deriveExpiryDate error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expiry mismatch: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestProductServiceCreate_OverridesClientExpiry(t *testing.T) {
	t.Parallel()

	repo := &fakeProductRepo{}
	service := NewProductService(repo)

	product, err := service.Create(context.Background(), types.Product{
		Name:           "Laptop",
		Vendor:         "Acme",
		Category:       "Electronics",
		Quantity:       "4",
		Price:          "1200",
		PurchaseDate:   "2024-01-15",
		WarrantyPeriod: "12",
		ExpiryDate:     "2099-12-31",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if product.ExpiryDate != "2025-01-15" {
		t.Fatalf("expiry not derived: got %q", product.ExpiryDate)
	}
	if repo.created.ExpiryDate != "2025-01-15" {
		t.Fatalf("persisted expiry not derived: got %q", repo.created.ExpiryDate)
	}
}

func TestProductServiceUpdate_RecomputesExpiry(t *testing.T) {
	t.Parallel()

	repo := &fakeProductRepo{}
	service := NewProductService(repo)

	product, err := service.Update(context.Background(), types.Product{
		ID:             7,
		Name:           "Laptop",
		Vendor:         "Acme",
		Category:       "Electronics",
		Quantity:       "4",
		Price:          "1200",
		PurchaseDate:   "2024-06-01",
		WarrantyPeriod: "24",
		ExpiryDate:     "2024-06-02",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if product.ExpiryDate != "2026-06-01" {
		t.Fatalf("expiry not recomputed: got %q", product.ExpiryDate)
	}
}

func TestProductServiceCreate_InvalidInputs(t *testing.T) {
	t.Parallel()

	service := NewProductService(&fakeProductRepo{})

	_, err := service.Create(context.Background(), types.Product{
		PurchaseDate:   "soon",
		WarrantyPeriod: "12",
	})
	if !errors.Is(err, ErrInvalidPurchaseDate) {
		t.Fatalf("expected ErrInvalidPurchaseDate, got %v", err)
	}

	_, err = service.Create(context.Background(), types.Product{
		PurchaseDate:   "2024-01-15",
		WarrantyPeriod: "forever",
	})
	if !errors.Is(err, ErrInvalidWarrantyPeriod) {
		t.Fatalf("expected ErrInvalidWarrantyPeriod, got %v", err)
	}
}
