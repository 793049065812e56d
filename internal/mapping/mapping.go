// Package mapping converts between persisted entities and wire DTOs.
// All functions are pure and total for well-formed input; none of them
// touches the store.
package mapping

import "github.com/orderdesk/apiserver/types"

// UserToDTO maps a user entity to its wire shape, mapping each owned
// order along the way.
func UserToDTO(user *types.User) types.UserDTO {
	orders := make([]types.OrderDTO, 0, len(user.Orders))
	for i := range user.Orders {
		orders = append(orders, OrderToDTO(&user.Orders[i]))
	}
	return types.UserDTO{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Orders: orders,
	}
}

// UserToCreatedDTO maps a user entity to the create/update response
// shape: id, name and email only, with no orders list.
func UserToCreatedDTO(user *types.User) types.UserDTO {
	return types.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// UserFromDTO maps a wire user back to an entity. Each order is mapped
// with a back-reference to the user value still under construction, so
// during mapping the referenced user has no orders attached yet; the
// collection is set once every order has been mapped.
func UserFromDTO(dto types.UserDTO) *types.User {
	user := &types.User{
		ID:    dto.ID,
		Name:  dto.Name,
		Email: dto.Email,
	}
	orders := make([]types.Order, 0, len(dto.Orders))
	for _, order := range dto.Orders {
		orders = append(orders, OrderFromDTO(order, user))
	}
	user.Orders = orders
	return user
}

// OrderToDTO maps an order entity to its wire shape. The relational
// user reference is replaced by the owner's display name, a narrowing
// transform that cannot be inverted from the DTO alone.
func OrderToDTO(order *types.Order) types.OrderDTO {
	dto := types.OrderDTO{
		ID:          order.ID,
		Description: order.Description,
		Status:      order.Status,
	}
	if order.User != nil {
		dto.UserRef = order.User.Name
	}
	return dto
}

// OrderFromDTO maps a wire order back to an entity. The owning user is
// supplied by the caller; the mapping never resolves it itself.
func OrderFromDTO(dto types.OrderDTO, owner *types.User) types.Order {
	return types.Order{
		ID:          dto.ID,
		Description: dto.Description,
		Status:      dto.Status,
		User:        owner,
	}
}
