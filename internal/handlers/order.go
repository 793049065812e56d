package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orderdesk/apiserver/internal/services"
	"github.com/orderdesk/apiserver/types"
)

// OrderHandler provides HTTP handlers for orders.
type OrderHandler struct {
	orders services.Orders
}

func NewOrderHandler(orders services.Orders) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// OrderRouter registers order routes on the given router.
func OrderRouter(r chi.Router, orders services.Orders, rs *Responder) {
	handler := NewOrderHandler(orders)

	r.Get("/orders", rs.Handle("OrderHandler.ListOrders", handler.ListOrders))
	r.Get("/orders/{id}", rs.Handle("OrderHandler.GetOrderByID", handler.GetOrderByID))
	r.Post("/orders", rs.HandleAudited("OrderHandler.CreateOrder", "order", "create", handler.CreateOrder))
	r.Put("/orders", rs.HandleAudited("OrderHandler.UpdateOrder", "order", "update", handler.UpdateOrder))
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) error {
	dtos, err := h.orders.List(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dtos)
	return nil
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return nil
	}

	dto, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dto)
	return nil
}

// CreateOrder adds an order for the user identified by the email in
// the payload's user field. Any submitted status is overridden with
// CREATED by the service.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) error {
	var dto types.OrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return nil
	}

	created, err := h.orders.Create(r.Context(), dto)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, created)
	return nil
}

// UpdateOrder applies the submitted status and owner email to the
// order named by the payload's id. The submitted description is
// discarded in favor of the stored one.
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) error {
	var dto types.OrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return nil
	}

	updated, err := h.orders.Update(r.Context(), dto)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, updated)
	return nil
}
