package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maccaabdi1/LocalLore/internal/models"
	"github.com/maccaabdi1/LocalLore/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GemHandler struct {
	svc *service.GemService
}

func NewGemHandler(s *service.GemService) *GemHandler { return &GemHandler{svc: s} }

type coordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type gemResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Category    string         `json:"category"`
	PhotoURL    string         `json:"photoUrl"`
	Upvotes     int            `json:"upvotes"`
	Coordinates coordinatesDTO `json:"coordinates"`
	UserID      string         `json:"userId"`
}

func toGemResponse(g *models.Gem) gemResponse {
	return gemResponse{
		ID:          g.ID.Hex(),
		Name:        g.Name,
		Description: g.Description,
		Address:     g.Address,
		Category:    g.Category,
		PhotoURL:    g.PhotoURL,
		Upvotes:     g.Upvotes,
		Coordinates: coordinatesDTO{Lat: g.Coordinates.Lat, Lng: g.Coordinates.Lng},
		UserID:      g.UserID.Hex(),
	}
}

type gemRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Category    string         `json:"category"`
	PhotoURL    string         `json:"photoUrl"`
	Upvotes     int            `json:"upvotes"`
	Coordinates coordinatesDTO `json:"coordinates"`
	UserID      string         `json:"userId"`
}

func (req *gemRequest) toModel() (*models.Gem, error) {
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, err
	}
	return &models.Gem{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Category:    req.Category,
		PhotoURL:    req.PhotoURL,
		Upvotes:     req.Upvotes,
		Coordinates: models.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng},
		UserID:      userID,
	}, nil
}

// @Summary List gems
// @Tags gems
// @Produce json
// @Success 200 {array} gemResponse
// @Router /gems [get]
func (h *GemHandler) ListGems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	gems, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]gemResponse, 0, len(gems))
	for i := range gems {
		resp = append(resp, toGemResponse(&gems[i]))
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Get gem by id
// @Tags gems
// @Produce json
// @Param id path string true "gem id (24-hex)"
// @Success 200 {object} gemResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /gems/{id} [get]
func (h *GemHandler) GetGem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid gem id", http.StatusBadRequest)
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if g == nil {
		http.Error(w, "gem not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(toGemResponse(g))
}

// @Summary Create gem
// @Tags gems
// @Accept json
// @Produce json
// @Param body body gemRequest true "gem"
// @Success 201 {object} gemResponse
// @Failure 400 {string} string
// @Router /gems [post]
func (h *GemHandler) CreateGem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req gemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := req.toModel()
	if err != nil {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}

	g, err = h.svc.Create(r.Context(), g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", "/gems/"+g.ID.Hex())
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toGemResponse(g))
}

// @Summary Replace gem
// @Tags gems
// @Accept json
// @Produce json
// @Param id path string true "gem id (24-hex)"
// @Param body body gemRequest true "gem"
// @Success 200 {object} gemResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /gems/{id} [put]
func (h *GemHandler) UpdateGem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid gem id", http.StatusBadRequest)
		return
	}

	var req gemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := req.toModel()
	if err != nil {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}
	g.ID = id

	g, err = h.svc.Update(r.Context(), g)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "gem not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(toGemResponse(g))
}

// @Summary Upvote gem
// @Tags gems
// @Param id path string true "gem id (24-hex)"
// @Success 204
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /gems/{id}/upvote [patch]
func (h *GemHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.svc.Upvote)
}

// @Summary Downvote gem
// @Tags gems
// @Param id path string true "gem id (24-hex)"
// @Success 204
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /gems/{id}/downvote [patch]
func (h *GemHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.svc.Downvote)
}

func (h *GemHandler) vote(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id primitive.ObjectID) error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid gem id", http.StatusBadRequest)
		return
	}

	if err := fn(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "gem not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete gem (ADMIN)
// @Tags gems
// @Param id path string true "gem id (24-hex)"
// @Param User-Id header string true "caller user id (24-hex)"
// @Success 204
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 403 {string} string
// @Failure 404 {string} string
// @Router /gems/{id} [delete]
func (h *GemHandler) DeleteGem(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid gem id", http.StatusBadRequest)
		return
	}

	callerID, err := primitive.ObjectIDFromHex(r.Header.Get("User-Id"))
	if err != nil {
		http.Error(w, "invalid User-Id header", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, service.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "gem not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
