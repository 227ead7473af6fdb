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

// CategoryHandler provides HTTP handlers for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler constructs a handler with the provided service.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRouter registers category routes on the given router.
func CategoryRouter(
	r chi.Router,
	categoryService *services.CategoryService,
	userService *services.UserService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewCategoryHandler(categoryService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListCategories)
	r.With(RequirePermission(userService, types.ActionAdd)).Post("/", handler.CreateCategory)
	r.Route("/{categoryID}", func(r chi.Router) {
		r.With(RequirePermission(userService, types.ActionEdit)).Put("/", handler.UpdateCategory)
		r.With(RequirePermission(userService, types.ActionDelete)).Delete("/", handler.DeleteCategory)
	})
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategoryRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.categoryService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "Category name already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error adding category")
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseCategoryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodeCategoryRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = id

	category, err := h.categoryService.Update(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusConflict, "Category name already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Error updating category")
		}
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseCategoryID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting category")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

func decodeCategoryRequest(r *http.Request) (types.Category, error) {
	var category types.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		return types.Category{}, errors.New("invalid request")
	}

	category.Name = strings.TrimSpace(category.Name)
	category.Type = strings.TrimSpace(category.Type)

	if category.Name == "" {
		return types.Category{}, errors.New("name is required")
	}
	if !types.ValidCategoryType(category.Type) {
		return types.Category{}, errors.New("type must be Purchased or Rented")
	}
	return category, nil
}

func parseCategoryID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "categoryID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid category id")
	}
	return id, nil
}
