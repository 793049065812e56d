package types

// User is the persisted representation of an account that owns orders.
type User struct {
	// ID is assigned by the store on insert.
	ID int `json:"id" db:"user_id"`

	// Name is the user's display name.
	Name string `json:"name" db:"user_name"`

	// Email identifies the user for order binding. Uniqueness is
	// expected but only enforced by lookup-by-email returning a
	// single row.
	Email string `json:"email" db:"user_email"`

	// Orders are the orders owned by this user, ordered by id.
	Orders []Order `json:"orders"`
}

// UserDTO is the wire-facing shape of a user. Create and update
// responses carry a nil Orders list.
type UserDTO struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Orders []OrderDTO `json:"orders"`
}
