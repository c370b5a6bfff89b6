package service

import (
	"context"
	"strings"

	"github.com/maccaabdi1/LocalLore/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the subset of the user repository the services need.
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns (nil, nil) when no user has the given id.
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create inserts the user exactly as supplied, role included.
func (s *UserService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	id, err := s.users.Insert(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

// Register creates a self-service user with role "user". The duplicate
// check is lookup-then-insert, so two concurrent registrations with the
// same email can both pass it.
func (s *UserService) Register(ctx context.Context, name, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u := &models.User{
		Name:  name,
		Email: email,
		Role:  "user",
	}
	id, err := s.users.Insert(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

// Login is identity lookup only; there are no passwords.
func (s *UserService) Login(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
