package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/orderdesk/apiserver/types"
)

// OrderRepository handles persistence for orders. Every read joins the
// owning user so callers can render the owner's name without a second
// lookup.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*types.Order, error) {
	const query = `
		SELECT o.order_id, o.order_description, o.order_status,
			u.user_id, u.user_name, u.user_email
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		WHERE o.order_id = $1`
	var order types.Order
	var owner types.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.Description,
		&order.Status,
		&owner.ID,
		&owner.Name,
		&owner.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	order.User = &owner
	return &order, nil
}

// List returns all orders ordered by id with owners attached.
func (r *OrderRepository) List(ctx context.Context) ([]types.Order, error) {
	const query = `
		SELECT o.order_id, o.order_description, o.order_status,
			u.user_id, u.user_name, u.user_email
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		ORDER BY o.order_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []types.Order{}
	for rows.Next() {
		var order types.Order
		var owner types.User
		if err := rows.Scan(
			&order.ID,
			&order.Description,
			&order.Status,
			&owner.ID,
			&owner.Name,
			&owner.Email,
		); err != nil {
			return nil, err
		}
		order.User = &owner
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *types.Order) (*types.Order, error) {
	const query = `
		INSERT INTO orders (order_description, order_status, user_id)
		VALUES ($1, $2, $3)
		RETURNING order_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		order.Description,
		order.Status,
		order.User.ID,
	).Scan(&order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

// Update overwrites description, status and owner binding.
func (r *OrderRepository) Update(ctx context.Context, order *types.Order) (*types.Order, error) {
	const query = `
		UPDATE orders
		SET order_description = $1,
			order_status = $2,
			user_id = $3
		WHERE order_id = $4`
	result, err := r.db.ExecContext(
		ctx,
		query,
		order.Description,
		order.Status,
		order.User.ID,
		order.ID,
	)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return order, nil
}
