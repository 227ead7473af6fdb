package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vendormax/apiserver/internal/services"
	"github.com/vendormax/apiserver/internal/store"
	"github.com/vendormax/apiserver/types"
)

// ProductHandler provides HTTP handlers for products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler constructs a handler with the provided service.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRouter registers product routes on the given router.
func ProductRouter(
	r chi.Router,
	productService *services.ProductService,
	userService *services.UserService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewProductHandler(productService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListProducts)
	r.With(RequirePermission(userService, types.ActionAdd)).Post("/", handler.CreateProduct)
	r.Route("/{productID}", func(r chi.Router) {
		r.With(RequirePermission(userService, types.ActionEdit)).Put("/", handler.UpdateProduct)
		r.With(RequirePermission(userService, types.ActionDelete)).Delete("/", handler.DeleteProduct)
	})
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProductRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.Create(r.Context(), req)
	if err != nil {
		if isProductValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Error adding product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodeProductRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = id

	product, err := h.productService.Update(r.Context(), req)
	if err != nil {
		switch {
		case isProductValidationError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Product not found")
		default:
			writeError(w, http.StatusInternalServerError, "Error updating product")
		}
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

func decodeProductRequest(r *http.Request) (types.Product, error) {
	var product types.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		return types.Product{}, errors.New("invalid request")
	}

	product.Name = strings.TrimSpace(product.Name)
	product.Vendor = strings.TrimSpace(product.Vendor)
	product.Category = strings.TrimSpace(product.Category)
	product.Quantity = strings.TrimSpace(product.Quantity)
	product.Price = strings.TrimSpace(product.Price)
	product.PurchaseDate = strings.TrimSpace(product.PurchaseDate)
	product.WarrantyPeriod = strings.TrimSpace(product.WarrantyPeriod)

	if product.Name == "" || product.Vendor == "" || product.Category == "" ||
		product.Quantity == "" || product.Price == "" ||
		product.PurchaseDate == "" || product.WarrantyPeriod == "" {
		return types.Product{}, errors.New("missing required fields")
	}
	return product, nil
}

func isProductValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidPurchaseDate) ||
		errors.Is(err, services.ErrInvalidWarrantyPeriod)
}

func parseProductID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid product id")
	}
	return id, nil
}
