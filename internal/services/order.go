package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/orderdesk/apiserver/internal/mapping"
	"github.com/orderdesk/apiserver/internal/store"
	"github.com/orderdesk/apiserver/types"
)

// Orders is the order-facing service surface, implemented by
// OrderService and its decorators.
type Orders interface {
	List(ctx context.Context) ([]types.OrderDTO, error)
	GetByID(ctx context.Context, id int) (types.OrderDTO, error)
	Create(ctx context.Context, dto types.OrderDTO) (types.OrderDTO, error)
	Update(ctx context.Context, dto types.OrderDTO) (types.OrderDTO, error)
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]types.Order, error)
	GetByID(ctx context.Context, id int) (*types.Order, error)
	Create(ctx context.Context, order *types.Order) (*types.Order, error)
	Update(ctx context.Context, order *types.Order) (*types.Order, error)
}

// OrderService encapsulates order use-cases. Owner resolution goes
// through the Users surface rather than the user repository directly,
// so the email pre-check and logging decorators apply to nested
// lookups the same way they apply to direct ones.
type OrderService struct {
	repo  OrderRepository
	users Users
}

func NewOrderService(repo OrderRepository, users Users) *OrderService {
	return &OrderService{repo: repo, users: users}
}

func (s *OrderService) List(ctx context.Context) ([]types.OrderDTO, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]types.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, mapping.OrderToDTO(&orders[i]))
	}
	return dtos, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int) (types.OrderDTO, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.OrderDTO{}, &OrderNotFoundError{ID: id}
		}
		return types.OrderDTO{}, err
	}
	return mapping.OrderToDTO(order), nil
}

// Create persists a new order for the user whose email is carried in
// the DTO's user field. The status is forced to CREATED no matter what
// the caller submitted.
func (s *OrderService) Create(ctx context.Context, dto types.OrderDTO) (types.OrderDTO, error) {
	owner, err := s.resolveOwner(ctx, dto.UserRef)
	if err != nil {
		return types.OrderDTO{}, err
	}

	order := mapping.OrderFromDTO(dto, owner)
	order.ID = 0
	order.Status = types.StatusCreated

	created, err := s.repo.Create(ctx, &order)
	if err != nil {
		return types.OrderDTO{}, err
	}
	return mapping.OrderToDTO(created), nil
}

// Update re-resolves the owner from the supplied email (which may
// re-assign the order to a different user), applies the submitted
// status, and keeps the stored description. The description in the
// update payload is intentionally discarded.
func (s *OrderService) Update(ctx context.Context, dto types.OrderDTO) (types.OrderDTO, error) {
	owner, err := s.resolveOwner(ctx, dto.UserRef)
	if err != nil {
		return types.OrderDTO{}, err
	}

	existing, err := s.GetByID(ctx, dto.ID)
	if err != nil {
		return types.OrderDTO{}, err
	}

	if !dto.Status.Valid() {
		return types.OrderDTO{}, fmt.Errorf("unknown order status %q", dto.Status)
	}

	order := mapping.OrderFromDTO(dto, owner)
	order.Description = existing.Description

	updated, err := s.repo.Update(ctx, &order)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.OrderDTO{}, &OrderNotFoundError{ID: dto.ID}
		}
		return types.OrderDTO{}, err
	}
	return mapping.OrderToDTO(updated), nil
}

func (s *OrderService) resolveOwner(ctx context.Context, email string) (*types.User, error) {
	dto, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapping.UserFromDTO(dto), nil
}
