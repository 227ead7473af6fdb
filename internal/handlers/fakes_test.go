package handlers

import (
	"context"
	"sort"

	"github.com/vendormax/apiserver/internal/store"
	"github.com/vendormax/apiserver/types"
)

// In-memory repositories implementing the services interfaces, mirroring the
// error contract of the SQL store.

type fakeUserRepo struct {
	users  map[int]types.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]types.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(user types.User) types.User {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]types.User, error) {
	users := make([]types.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrConflict
		}
	}
	return f.add(user), nil
}

func (f *fakeUserRepo) UpdatePermissions(ctx context.Context, id int, permissions types.Permissions) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	user.Permissions = permissions
	f.users[id] = user
	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.PasswordHash = passwordHash
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeVendorRepo struct {
	vendors map[int]types.Vendor
	nextID  int
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[int]types.Vendor{}, nextID: 1}
}

func (f *fakeVendorRepo) List(ctx context.Context) ([]types.Vendor, error) {
	vendors := make([]types.Vendor, 0, len(f.vendors))
	for _, vendor := range f.vendors {
		vendors = append(vendors, vendor)
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })
	return vendors, nil
}

func (f *fakeVendorRepo) Get(ctx context.Context, id int) (types.Vendor, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return types.Vendor{}, store.ErrNotFound
	}
	return vendor, nil
}

func (f *fakeVendorRepo) Create(ctx context.Context, vendor types.Vendor) (types.Vendor, error) {
	for _, existing := range f.vendors {
		if existing.Email == vendor.Email {
			return types.Vendor{}, store.ErrConflict
		}
	}
	vendor.ID = f.nextID
	f.nextID++
	f.vendors[vendor.ID] = vendor
	return vendor, nil
}

func (f *fakeVendorRepo) Update(ctx context.Context, vendor types.Vendor) (types.Vendor, error) {
	if _, ok := f.vendors[vendor.ID]; !ok {
		return types.Vendor{}, store.ErrNotFound
	}
	f.vendors[vendor.ID] = vendor
	return vendor, nil
}

func (f *fakeVendorRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.vendors[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.vendors, id)
	return nil
}

type fakeProductRepo struct {
	products map[int]types.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int]types.Product{}, nextID: 1}
}

func (f *fakeProductRepo) List(ctx context.Context) ([]types.Product, error) {
	products := make([]types.Product, 0, len(f.products))
	for _, product := range f.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id int) (types.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return types.Product{}, store.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product types.Product) (types.Product, error) {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product types.Product) (types.Product, error) {
	if _, ok := f.products[product.ID]; !ok {
		return types.Product{}, store.ErrNotFound
	}
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}
