package handlers

import (
	"net/http"

	"nexthire/internal/app"
	"nexthire/internal/http/middleware"
	"nexthire/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type profileUpdateRequest struct {
	Name            *string  `json:"name,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Experience      *string  `json:"experience,omitempty"`
	Company         *string  `json:"company,omitempty"`
	Position        *string  `json:"position,omitempty"`
	CompleteProfile bool     `json:"complete_profile,omitempty"`
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	account, err := h.users.Get(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, account)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.users.UpdateProfile(r.Context(), userID, app.ProfileUpdate{
		Name:            req.Name,
		Skills:          req.Skills,
		Experience:      req.Experience,
		Company:         req.Company,
		Position:        req.Position,
		CompleteProfile: req.CompleteProfile,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if err := h.users.Deactivate(r.Context(), userID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
