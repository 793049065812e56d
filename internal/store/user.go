package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/orderdesk/apiserver/types"
)

// UserRepository handles persistence for users and their owned orders.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users ordered by id, each with its orders attached.
func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT user_id, user_name, user_email
		FROM users
		ORDER BY user_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []types.User{}
	for rows.Next() {
		var user types.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		if err := r.attachOrders(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*types.User, error) {
	const query = `
		SELECT user_id, user_name, user_email
		FROM users
		WHERE user_id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail performs a single exact-match lookup on the email column.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	const query = `
		SELECT user_id, user_name, user_email
		FROM users
		WHERE user_email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*types.User, error) {
	var user types.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.attachOrders(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *types.User) (*types.User, error) {
	const query = `
		INSERT INTO users (user_name, user_email)
		VALUES ($1, $2)
		RETURNING user_id`
	if err := r.db.QueryRowContext(ctx, query, user.Name, user.Email).Scan(&user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites name and email only. Orders are untouched.
func (r *UserRepository) Update(ctx context.Context, user *types.User) (*types.User, error) {
	const query = `
		UPDATE users
		SET user_name = $1,
			user_email = $2
		WHERE user_id = $3`
	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.ID)
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
	return user, nil
}

// Delete removes the user row. Owned orders go with it through the
// ON DELETE CASCADE foreign key.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) attachOrders(ctx context.Context, user *types.User) error {
	const query = `
		SELECT order_id, order_description, order_status
		FROM orders
		WHERE user_id = $1
		ORDER BY order_id`
	rows, err := r.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	orders := []types.Order{}
	for rows.Next() {
		var order types.Order
		if err := rows.Scan(&order.ID, &order.Description, &order.Status); err != nil {
			return err
		}
		order.User = user
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	user.Orders = orders
	return nil
}
