package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/orderdesk/apiserver/internal/services"
	"github.com/orderdesk/apiserver/types"
)

// UserHandler provides HTTP handlers for users.
type UserHandler struct {
	users services.Users
}

func NewUserHandler(users services.Users) *UserHandler {
	return &UserHandler{users: users}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, users services.Users, rs *Responder) {
	handler := NewUserHandler(users)

	r.Get("/users", rs.Handle("UserHandler.ListUsers", handler.ListUsers))
	r.Get("/users/id/{id}", rs.Handle("UserHandler.GetUserByID", handler.GetUserByID))
	r.Get("/users/email/{email}", rs.Handle("UserHandler.GetUserByEmail", handler.GetUserByEmail))
	r.Post("/users", rs.HandleAudited("UserHandler.CreateUser", "user", "create", handler.CreateUser))
	r.Put("/users/{id}", rs.HandleAudited("UserHandler.UpdateUser", "user", "update", handler.UpdateUser))
	r.Delete("/users/{id}", rs.HandleAudited("UserHandler.DeleteUser", "user", "delete", handler.DeleteUser))
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	dtos, err := h.users.List(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dtos)
	return nil
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return nil
	}

	dto, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dto)
	return nil
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) error {
	email := chi.URLParam(r, "email")

	dto, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, dto)
	return nil
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	var dto types.UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return nil
	}

	created, err := h.users.Create(r.Context(), dto)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, created)
	return nil
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return nil
	}

	var dto types.UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return nil
	}

	updated, err := h.users.Update(r.Context(), id, dto)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, updated)
	return nil
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return nil
	}

	message, err := h.users.Delete(r.Context(), id)
	if err != nil {
		return err
	}
	writeText(w, http.StatusOK, message)
	return nil
}

func parseID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
