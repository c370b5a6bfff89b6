package service

import (
	"context"

	"github.com/maccaabdi1/LocalLore/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GemStore is the subset of the gem repository the service needs.
type GemStore interface {
	FindAll(ctx context.Context) ([]models.Gem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gem, error)
	Insert(ctx context.Context, g *models.Gem) (primitive.ObjectID, error)
	Replace(ctx context.Context, g *models.Gem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type GemService struct {
	gems  GemStore
	users UserStore
}

func NewGemService(gems GemStore, users UserStore) *GemService {
	return &GemService{gems: gems, users: users}
}

func (s *GemService) List(ctx context.Context) ([]models.Gem, error) {
	return s.gems.FindAll(ctx)
}

// Get returns (nil, nil) when no gem has the given id.
func (s *GemService) Get(ctx context.Context, id primitive.ObjectID) (*models.Gem, error) {
	return s.gems.FindByID(ctx, id)
}

// Create inserts the gem as supplied. Upvotes come verbatim from the
// payload and the creating user is not checked to exist.
func (s *GemService) Create(ctx context.Context, g *models.Gem) (*models.Gem, error) {
	id, err := s.gems.Insert(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	return g, nil
}

// Update replaces the whole document for an existing gem.
func (s *GemService) Update(ctx context.Context, g *models.Gem) (*models.Gem, error) {
	existing, err := s.gems.FindByID(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if err := s.gems.Replace(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Upvote increments the counter by one via read-modify-replace.
func (s *GemService) Upvote(ctx context.Context, id primitive.ObjectID) error {
	return s.vote(ctx, id, 1)
}

// Downvote decrements by one. There is no floor at zero.
func (s *GemService) Downvote(ctx context.Context, id primitive.ObjectID) error {
	return s.vote(ctx, id, -1)
}

func (s *GemService) vote(ctx context.Context, id primitive.ObjectID, delta int) error {
	g, err := s.gems.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrNotFound
	}
	g.Upvotes += delta
	return s.gems.Replace(ctx, g)
}

// Delete removes a gem on behalf of callerID. The caller must exist and
// hold the admin role; checks run in that order, before the gem lookup.
func (s *GemService) Delete(ctx context.Context, id, callerID primitive.ObjectID) error {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrUnauthorized
	}
	if caller.Role != "admin" {
		return ErrForbidden
	}

	g, err := s.gems.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrNotFound
	}
	return s.gems.Delete(ctx, id)
}
