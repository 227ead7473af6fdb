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

func newUserTestServer(t *testing.T, users *fakeUserRepo) *httptest.Server {
	t.Helper()

	userService := services.NewUserService(users)

	router := chi.NewRouter()
	router.Route("/users", func(r chi.Router) {
		UserRouter(r, userService, RequireAuth(testSecret))
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestUserList_HidesPasswordHash(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := users.add(types.User{
		FullName:     "Admin",
		Email:        "admin@example.com",
		PasswordHash: "supersecret",
	})
	server := newUserTestServer(t, users)

	resp := authedRequest(t, http.MethodGet, server.URL+"/users", admin.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", resp.StatusCode)
	}

	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	resp.Body.Close()

	if len(raw) != 1 {
		t.Fatalf("expected one user, got %d", len(raw))
	}
	for key := range raw[0] {
		if key == "passwordHash" || key == "password_hash" || key == "password" {
			t.Fatalf("password material leaked in listing: %q", key)
		}
	}
}

func TestUserUpdatePermissions(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := users.add(types.User{FullName: "Admin", Email: "admin@example.com", PasswordHash: "x"})
	target := users.add(types.User{FullName: "Worker", Email: "worker@example.com", PasswordHash: "x"})
	server := newUserTestServer(t, users)

	resp := authedRequest(t, http.MethodPut, server.URL+"/users/2/permissions", admin.ID, PermissionsRequest{
		Permissions: types.Permissions{Add: true, Edit: true},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status %d", resp.StatusCode)
	}
	var updated types.User
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	resp.Body.Close()

	if updated.ID != target.ID {
		t.Fatalf("unexpected user in response: %+v", updated)
	}
	if !updated.Permissions.Add || !updated.Permissions.Edit || updated.Permissions.Delete {
		t.Fatalf("unexpected permissions: %+v", updated.Permissions)
	}
}

func TestUserUpdatePermissions_Missing(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := users.add(types.User{FullName: "Admin", Email: "admin@example.com", PasswordHash: "x"})
	server := newUserTestServer(t, users)

	resp := authedRequest(t, http.MethodPut, server.URL+"/users/42/permissions", admin.ID, PermissionsRequest{
		Permissions: types.Permissions{Add: true},
	})
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.StatusCode)
	}
}

func TestUserDelete(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	admin := users.add(types.User{FullName: "Admin", Email: "admin@example.com", PasswordHash: "x"})
	users.add(types.User{FullName: "Worker", Email: "worker@example.com", PasswordHash: "x"})
	server := newUserTestServer(t, users)

	resp := authedRequest(t, http.MethodDelete, server.URL+"/users/2", admin.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status %d", resp.StatusCode)
	}

	resp = authedRequest(t, http.MethodDelete, server.URL+"/users/2", admin.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete must 404, got %d", resp.StatusCode)
	}
}
