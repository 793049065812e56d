package services

import "fmt"

// UserNotFoundError reports a lookup that matched no user row. Either
// ID or Email is set depending on which key was used.
type UserNotFoundError struct {
	ID    int
	Email string
}

func (e *UserNotFoundError) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("user with email %s not found", e.Email)
	}
	return fmt.Sprintf("user with id %d not found", e.ID)
}

// OrderNotFoundError reports a lookup that matched no order row.
type OrderNotFoundError struct {
	ID int
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order with id %d not found", e.ID)
}

// InvalidEmailError reports an email argument that failed the format
// pre-check before any lookup ran.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email supplied: %s", e.Email)
}
