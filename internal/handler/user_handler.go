package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maccaabdi1/LocalLore/internal/models"
	"github.com/maccaabdi1/LocalLore/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler { return &UserHandler{svc: s} }

type userResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Role      string   `json:"role"`
}

// toUserResponse projects a stored user. A missing favorites array
// always comes out as an empty list, never null.
func toUserResponse(u *models.User) userResponse {
	favs := make([]string, 0, len(u.Favorites))
	for _, f := range u.Favorites {
		favs = append(favs, f.Hex())
	}
	return userResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favs,
		Role:      u.Role,
	}
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} userResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	users, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	_ = json.NewEncoder(w).Encode(resp)
}

type createUserRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Role      string   `json:"role"`
}

// @Summary Create user
// @Description Inserts the user exactly as supplied, role included.
// @Tags users
// @Accept json
// @Produce json
// @Param body body createUserRequest true "user"
// @Success 201 {object} userResponse
// @Failure 400 {string} string
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	favs := make([]primitive.ObjectID, 0, len(req.Favorites))
	for _, f := range req.Favorites {
		id, err := primitive.ObjectIDFromHex(f)
		if err != nil {
			http.Error(w, "invalid favorite id", http.StatusBadRequest)
			return
		}
		favs = append(favs, id)
	}

	u, err := h.svc.Create(r.Context(), &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Favorites: favs,
		Role:      req.Role,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", "/users/"+u.ID.Hex())
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required"`
}

// @Summary Register
// @Tags users
// @Accept json
// @Produce json
// @Param body body registerRequest true "registration"
// @Success 201 {object} userResponse
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Location", "/users/"+u.ID.Hex())
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
}

// @Summary Login
// @Description Identity lookup by email; there is no password check.
// @Tags users
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} map[string]any
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "login successful",
		"user":    toUserResponse(u),
	})
}

// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "user id (24-hex)"
// @Success 200 {object} userResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}
