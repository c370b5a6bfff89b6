package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestRegisterThenDuplicate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/register", `{"name":"Alice","email":"alice@example.com"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	var u userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !hexID.MatchString(u.ID) {
		t.Errorf("id = %q, want 24-hex", u.ID)
	}
	if u.Role != "user" {
		t.Errorf("role = %q, want \"user\"", u.Role)
	}
	if want := "/users/" + u.ID; rec.Header().Get("Location") != want {
		t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), want)
	}

	rec = env.do(t, http.MethodPost, "/users/register", `{"name":"Other","email":"alice@example.com"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", rec.Code)
	}
	if len(env.users.users) != 1 {
		t.Errorf("store has %d users, want 1", len(env.users.users))
	}
}

func TestRegisterBlankEmail(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{`{"name":"Alice"}`, `{"name":"Alice","email":""}`, `{"name":"Alice","email":"  "}`} {
		rec := env.do(t, http.MethodPost, "/users/register", body, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("register %s status = %d, want 400", body, rec.Code)
		}
	}
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/users/register", `{"name":"Alice","email":"alice@example.com"}`, nil)

	rec := env.do(t, http.MethodPost, "/users/login", `{"email":"alice@example.com"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string       `json:"message"`
		User    userResponse `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message == "" {
		t.Error("message is empty")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("user.email = %q", resp.User.Email)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/login", `{"email":"ghost@example.com"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLoginBlankEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/login", `{"email":""}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetUserBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users/not-an-id", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetUserUnknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users/507f1f77bcf86cd799439099", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListUsersEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestUserFavoritesNeverNull(t *testing.T) {
	env := newTestEnv(t)
	id := env.addUser(t, "user") // stored with no favorites at all

	rec := env.do(t, http.MethodGet, "/users/"+id.Hex(), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"favorites":[]`) {
		t.Errorf("body = %s, want favorites projected to []", rec.Body.String())
	}
}

func TestCreateUserTrustsRole(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Root","email":"root@example.com","role":"admin","favorites":["507f1f77bcf86cd799439011"]}`
	rec := env.do(t, http.MethodPost, "/users", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var u userResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &u)
	if u.Role != "admin" {
		t.Errorf("role = %q, want \"admin\" (caller-supplied role is trusted)", u.Role)
	}
	if len(u.Favorites) != 1 || u.Favorites[0] != "507f1f77bcf86cd799439011" {
		t.Errorf("favorites = %v", u.Favorites)
	}
}

func TestCreateUserBadFavoriteID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users", `{"name":"x","email":"x@example.com","favorites":["nope"]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
