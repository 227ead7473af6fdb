package services

import (
	"context"

	"github.com/vendormax/apiserver/types"
)

// VendorRepository defines persistence operations for vendors.
type VendorRepository interface {
	List(ctx context.Context) ([]types.Vendor, error)
	Get(ctx context.Context, id int) (types.Vendor, error)
	Create(ctx context.Context, vendor types.Vendor) (types.Vendor, error)
	Update(ctx context.Context, vendor types.Vendor) (types.Vendor, error)
	Delete(ctx context.Context, id int) error
}

// VendorService encapsulates vendor use-cases.
type VendorService struct {
	repo VendorRepository
}

func NewVendorService(repo VendorRepository) *VendorService {
	return &VendorService{repo: repo}
}

func (s *VendorService) List(ctx context.Context) ([]types.Vendor, error) {
	return s.repo.List(ctx)
}

func (s *VendorService) Get(ctx context.Context, id int) (types.Vendor, error) {
	return s.repo.Get(ctx, id)
}

func (s *VendorService) Create(ctx context.Context, vendor types.Vendor) (types.Vendor, error) {
	return s.repo.Create(ctx, vendor)
}

func (s *VendorService) Update(ctx context.Context, vendor types.Vendor) (types.Vendor, error) {
	return s.repo.Update(ctx, vendor)
}

func (s *VendorService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
