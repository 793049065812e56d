package types

// OrderStatus is the lifecycle state of an order. No transition table
// is enforced; updates may overwrite any status with any other.
type OrderStatus string

const (
	StatusCreated    OrderStatus = "CREATED"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Order is the persisted representation of an order row.
type Order struct {
	// ID is assigned by the store on insert.
	ID int `json:"id" db:"order_id"`

	// Description is free text supplied at creation.
	Description string `json:"description" db:"order_description"`

	Status OrderStatus `json:"status" db:"order_status"`

	// User is the owning user. A back-reference only; the user owns
	// the order, not the other way around. Non-nil after creation.
	User *User `json:"-" db:"-"`
}

// OrderDTO is the wire-facing shape of an order. UserRef carries the
// owning user's display name on output; on input (create/update) the
// client fills it with the owner's email instead. The field name on
// the wire is userDB for historical reasons.
type OrderDTO struct {
	ID          int         `json:"id"`
	Description string      `json:"description"`
	Status      OrderStatus `json:"status"`
	UserRef     string      `json:"userDB"`
}
