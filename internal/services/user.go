package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/orderdesk/apiserver/internal/mapping"
	"github.com/orderdesk/apiserver/internal/store"
	"github.com/orderdesk/apiserver/types"
)

// Users is the user-facing service surface. It is implemented by
// UserService and by the decorators in internal/intercept, so callers
// always see the fully composed chain.
type Users interface {
	List(ctx context.Context) ([]types.UserDTO, error)
	GetByID(ctx context.Context, id int) (types.UserDTO, error)
	GetByEmail(ctx context.Context, email string) (types.UserDTO, error)
	Create(ctx context.Context, dto types.UserDTO) (types.UserDTO, error)
	Update(ctx context.Context, id int, dto types.UserDTO) (types.UserDTO, error)
	Delete(ctx context.Context, id int) (string, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]types.User, error)
	GetByID(ctx context.Context, id int) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	Create(ctx context.Context, user *types.User) (*types.User, error)
	Update(ctx context.Context, user *types.User) (*types.User, error)
	Delete(ctx context.Context, id int) error
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]types.UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]types.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, mapping.UserToDTO(&users[i]))
	}
	return dtos, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.UserDTO, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.UserDTO{}, &UserNotFoundError{ID: id}
		}
		return types.UserDTO{}, err
	}
	return mapping.UserToDTO(user), nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.UserDTO, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.UserDTO{}, &UserNotFoundError{Email: email}
		}
		return types.UserDTO{}, err
	}
	return mapping.UserToDTO(user), nil
}

// Create persists a new user row with a server-assigned id. The
// response carries id, name and email only.
func (s *UserService) Create(ctx context.Context, dto types.UserDTO) (types.UserDTO, error) {
	user := mapping.UserFromDTO(dto)
	user.ID = 0
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return types.UserDTO{}, err
	}
	return mapping.UserToCreatedDTO(created), nil
}

// Update overwrites name and email only; the user's orders are left
// untouched and returned as stored.
func (s *UserService) Update(ctx context.Context, id int, dto types.UserDTO) (types.UserDTO, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return types.UserDTO{}, err
	}

	user := mapping.UserFromDTO(existing)
	user.Name = dto.Name
	user.Email = dto.Email

	if _, err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.UserDTO{}, &UserNotFoundError{ID: id}
		}
		return types.UserDTO{}, err
	}
	return mapping.UserToDTO(user), nil
}

// Delete removes the user and, through the schema, its owned orders.
// It returns a human-readable confirmation for the response body.
func (s *UserService) Delete(ctx context.Context, id int) (string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &UserNotFoundError{ID: id}
		}
		return "", err
	}
	return fmt.Sprintf("user with id %d deleted successfully", id), nil
}
