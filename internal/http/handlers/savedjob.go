package handlers

import (
	"net/http"

	"nexthire/internal/app"
	"nexthire/internal/http/middleware"
	"nexthire/internal/http/response"
)

type SavedJobHandler struct {
	saved *app.SavedJobService
}

func NewSavedJobHandler(saved *app.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{saved: saved}
}

type saveJobRequest struct {
	Note string `json:"note"`
}

func (h *SavedJobHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req saveJobRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	saved, err := h.saved.Save(r.Context(), userID, jobID, req.Note)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, saved)
}

func (h *SavedJobHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.saved.Unsave(r.Context(), userID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *SavedJobHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.saved.List(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
