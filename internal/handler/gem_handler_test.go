package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

const cafeX = `{
	"name": "Cafe X",
	"description": "hidden courtyard cafe",
	"address": "1 Main St",
	"category": "Café",
	"photoUrl": "http://example.com/x.jpg",
	"upvotes": 0,
	"coordinates": {"lat": 43.15, "lng": -77.6},
	"userId": "507f1f77bcf86cd799439011"
}`

func createCafeX(t *testing.T, env *testEnv) gemResponse {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/gems", cafeX, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /gems status = %d, body %s", rec.Code, rec.Body.String())
	}
	var g gemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !hexID.MatchString(g.ID) {
		t.Fatalf("id = %q, want 24-hex", g.ID)
	}
	if want := "/gems/" + g.ID; rec.Header().Get("Location") != want {
		t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), want)
	}
	return g
}

func TestListGemsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/gems", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestCreateGemThenGet(t *testing.T) {
	env := newTestEnv(t)
	created := createCafeX(t, env)

	rec := env.do(t, http.MethodGet, "/gems/"+created.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var got gemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got != created {
		t.Errorf("GET body = %+v, want %+v", got, created)
	}
	if got.Coordinates.Lat != 43.15 || got.Coordinates.Lng != -77.6 {
		t.Errorf("coordinates = %+v", got.Coordinates)
	}
	if got.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("userId = %q", got.UserID)
	}
}

func TestCreateGemKeepsSuppliedUpvotes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/gems", `{"name":"x","upvotes":41,"coordinates":{"lat":0,"lng":0},"userId":"507f1f77bcf86cd799439011"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var g gemResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &g)
	if g.Upvotes != 41 {
		t.Errorf("upvotes = %d, want 41 (taken verbatim)", g.Upvotes)
	}
}

func TestCreateGemBadUserID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/gems", `{"name":"x","userId":"nope"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetGemBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/gems/not-an-id", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetGemUnknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/gems/507f1f77bcf86cd799439099", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpvoteThenGet(t *testing.T) {
	env := newTestEnv(t)
	created := createCafeX(t, env)

	rec := env.do(t, http.MethodPatch, "/gems/"+created.ID+"/upvote", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PATCH upvote status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 body = %q, want empty", rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/gems/"+created.ID, "", nil)
	var got gemResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Upvotes != 1 {
		t.Errorf("upvotes = %d, want 1", got.Upvotes)
	}
}

func TestDownvoteGoesNegative(t *testing.T) {
	env := newTestEnv(t)
	created := createCafeX(t, env)

	rec := env.do(t, http.MethodPatch, "/gems/"+created.ID+"/downvote", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("PATCH downvote status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/gems/"+created.ID, "", nil)
	var got gemResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Upvotes != -1 {
		t.Errorf("upvotes = %d, want -1", got.Upvotes)
	}
}

func TestVoteBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPatch, "/gems/zzz/upvote", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestVoteUnknownGem(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPatch, "/gems/507f1f77bcf86cd799439099/downvote", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateGemReplaces(t *testing.T) {
	env := newTestEnv(t)
	created := createCafeX(t, env)

	body := `{"name":"Cafe Y","description":"","address":"","category":"Bar","photoUrl":"","upvotes":3,"coordinates":{"lat":1,"lng":2},"userId":"507f1f77bcf86cd799439011"}`
	rec := env.do(t, http.MethodPut, "/gems/"+created.ID, body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/gems/"+created.ID, "", nil)
	var got gemResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Name != "Cafe Y" || got.Category != "Bar" || got.Upvotes != 3 {
		t.Errorf("after PUT got %+v", got)
	}
}

func TestUpdateGemUnknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/gems/507f1f77bcf86cd799439099", cafeX, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteGemAuthorization(t *testing.T) {
	env := newTestEnv(t)
	created := createCafeX(t, env)
	userID := env.addUser(t, "user")
	adminID := env.addUser(t, "admin")

	// Bad gem id comes first.
	rec := env.do(t, http.MethodDelete, "/gems/zzz", "", map[string]string{"User-Id": adminID.Hex()})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad gem id: status = %d, want 400", rec.Code)
	}

	// Missing or malformed User-Id header.
	rec = env.do(t, http.MethodDelete, "/gems/"+created.ID, "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing header: status = %d, want 400", rec.Code)
	}

	// Unknown caller.
	rec = env.do(t, http.MethodDelete, "/gems/"+created.ID, "", map[string]string{"User-Id": "507f1f77bcf86cd799439099"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown caller: status = %d, want 401", rec.Code)
	}

	// Non-admin caller.
	rec = env.do(t, http.MethodDelete, "/gems/"+created.ID, "", map[string]string{"User-Id": userID.Hex()})
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin: status = %d, want 403", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/gems/"+created.ID, "", nil); rec.Code != http.StatusOK {
		t.Errorf("gem gone after rejected delete: GET status = %d", rec.Code)
	}

	// Admin on unknown gem.
	rec = env.do(t, http.MethodDelete, "/gems/507f1f77bcf86cd799439099", "", map[string]string{"User-Id": adminID.Hex()})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown gem: status = %d, want 404", rec.Code)
	}

	// Admin delete succeeds.
	rec = env.do(t, http.MethodDelete, "/gems/"+created.ID, "", map[string]string{"User-Id": adminID.Hex()})
	if rec.Code != http.StatusNoContent {
		t.Errorf("admin delete: status = %d, want 204", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/gems/"+created.ID, "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("gem still retrievable after delete: GET status = %d", rec.Code)
	}
}
