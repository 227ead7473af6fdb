package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/vendormax/apiserver/internal/services"
	"github.com/vendormax/apiserver/types"
)

func newProductTestServer(t *testing.T, users *fakeUserRepo, products *fakeProductRepo) *httptest.Server {
	t.Helper()

	userService := services.NewUserService(users)
	productService := services.NewProductService(products)

	router := chi.NewRouter()
	router.Route("/products", func(r chi.Router) {
		ProductRouter(r, productService, userService, RequireAuth(testSecret))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func productAdmin(users *fakeUserRepo) types.User {
	return users.add(types.User{
		FullName:     "Store Keeper",
		Email:        "keeper@example.com",
		PasswordHash: "x",
		Permissions:  types.Permissions{Add: true, Edit: true, Delete: true},
	})
}

func TestProductCreate_DerivesExpiryDate(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := productAdmin(users)
	server := newProductTestServer(t, users, newFakeProductRepo())

	resp := authedRequest(t, http.MethodPost, server.URL+"/products", admin.ID, types.Product{
		Name:           "Laptop",
		Vendor:         "Acme",
		Category:       "Electronics",
		Quantity:       "4",
		Price:          "1200",
		SerialBox:      "SN-100",
		PurchaseDate:   "2024-01-15",
		WarrantyPeriod: "12",
		ExpiryDate:     "2099-12-31",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}
	var created types.Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	resp.Body.Close()

	if created.ExpiryDate != "2025-01-15" {
		t.Fatalf("expiry must be derived from purchase date and warranty, got %q", created.ExpiryDate)
	}
}

func TestProductUpdate_RecomputesExpiryDate(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := productAdmin(users)
	server := newProductTestServer(t, users, newFakeProductRepo())

	resp := authedRequest(t, http.MethodPost, server.URL+"/products", admin.ID, types.Product{
		Name:           "Laptop",
		Vendor:         "Acme",
		Category:       "Electronics",
		Quantity:       "4",
		Price:          "1200",
		PurchaseDate:   "2024-01-15",
		WarrantyPeriod: "12",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", resp.StatusCode)
	}

	resp = authedRequest(t, http.MethodPut, server.URL+"/products/1", admin.ID, types.Product{
		Name:           "Laptop",
		Vendor:         "Acme",
		Category:       "Electronics",
		Quantity:       "4",
		Price:          "1200",
		PurchaseDate:   "2024-06-01",
		WarrantyPeriod: "6",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status %d", resp.StatusCode)
	}
	var updated types.Product
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	resp.Body.Close()

	if updated.ExpiryDate != "2024-12-01" {
		t.Fatalf("expiry must follow the new purchase date, got %q", updated.ExpiryDate)
	}
}

func TestProductCreate_Validation(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := productAdmin(users)
	server := newProductTestServer(t, users, newFakeProductRepo())

	valid := types.Product{
		Name:           "Laptop",
		Vendor:         "Acme",
		Category:       "Electronics",
		Quantity:       "4",
		Price:          "1200",
		PurchaseDate:   "2024-01-15",
		WarrantyPeriod: "12",
	}

	tests := []struct {
		name   string
		mutate func(p *types.Product)
	}{
		{"missing name", func(p *types.Product) { p.Name = "" }},
		{"missing quantity", func(p *types.Product) { p.Quantity = "  " }},
		{"bad purchase date", func(p *types.Product) { p.PurchaseDate = "15/01/2024" }},
		{"bad warranty", func(p *types.Product) { p.WarrantyPeriod = "one year" }},
		{"negative warranty", func(p *types.Product) { p.WarrantyPeriod = "-3" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := valid
			tt.mutate(&product)

			resp := authedRequest(t, http.MethodPost, server.URL+"/products", admin.ID, product)
			resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestProductDelete_Missing(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := productAdmin(users)
	server := newProductTestServer(t, users, newFakeProductRepo())

	resp := authedRequest(t, http.MethodDelete, server.URL+"/products/42", admin.ID, nil)
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleting a missing product must 404, got %d", resp.StatusCode)
	}
}
