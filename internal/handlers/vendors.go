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

// VendorHandler provides HTTP handlers for vendors.
type VendorHandler struct {
	vendorService *services.VendorService
}

// NewVendorHandler constructs a handler with the provided service.
func NewVendorHandler(vendorService *services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// VendorRouter registers vendor routes on the given router. Every route
// requires authentication; mutating routes additionally require the
// matching permission flag.
func VendorRouter(
	r chi.Router,
	vendorService *services.VendorService,
	userService *services.UserService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewVendorHandler(vendorService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListVendors)
	r.With(RequirePermission(userService, types.ActionAdd)).Post("/", handler.CreateVendor)
	r.Route("/{vendorID}", func(r chi.Router) {
		r.With(RequirePermission(userService, types.ActionEdit)).Put("/", handler.UpdateVendor)
		r.With(RequirePermission(userService, types.ActionDelete)).Delete("/", handler.DeleteVendor)
	})
}

func (h *VendorHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching vendors")
		return
	}
	writeJSON(w, http.StatusOK, vendors)
}

func (h *VendorHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	req, err := decodeVendorRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vendor, err := h.vendorService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "Vendor email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error adding vendor")
		return
	}

	writeJSON(w, http.StatusCreated, vendor)
}

func (h *VendorHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := parseVendorID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodeVendorRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = id

	vendor, err := h.vendorService.Update(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Vendor not found")
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusConflict, "Vendor email already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Error updating vendor")
		}
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}

func (h *VendorHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := parseVendorID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.vendorService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting vendor")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Vendor deleted successfully"})
}

func decodeVendorRequest(r *http.Request) (types.Vendor, error) {
	var vendor types.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		return types.Vendor{}, errors.New("invalid request")
	}

	vendor.Name = strings.TrimSpace(vendor.Name)
	vendor.Location = strings.TrimSpace(vendor.Location)
	vendor.Department = strings.TrimSpace(vendor.Department)
	vendor.Email = strings.TrimSpace(vendor.Email)
	vendor.Phone = strings.TrimSpace(vendor.Phone)

	if vendor.Name == "" || vendor.Location == "" || vendor.Department == "" || vendor.Email == "" || vendor.Phone == "" {
		return types.Vendor{}, errors.New("missing required fields")
	}
	return vendor, nil
}

func parseVendorID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "vendorID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid vendor id")
	}
	return id, nil
}
