package handlers

import (
	"net/http"
	"time"

	"nexthire/internal/app"
	"nexthire/internal/common"
	"nexthire/internal/domain/application"
	"nexthire/internal/domain/user"
	"nexthire/internal/http/middleware"
	"nexthire/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	JobID          common.UUID                `json:"job_id"`
	CoverLetter    string                     `json:"cover_letter"`
	ExpectedSalary application.ExpectedSalary `json:"expected_salary"`
	Experience     string                     `json:"experience"`
	Resume         *application.ResumeMeta    `json:"resume"`
}

type applicationStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type interviewRequest struct {
	ScheduledAt string `json:"scheduled_at"`
	Duration    int    `json:"duration"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type withdrawRequest struct {
	Reason string `json:"reason"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if !h.limiter.Allow("apply:"+string(applicantID), 20, time.Hour) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many applications, slow down", nil))
		return
	}
	created, err := h.applications.Submit(r.Context(), applicantID, app.SubmitInput{
		JobID:          req.JobID,
		CoverLetter:    req.CoverLetter,
		ExpectedSalary: req.ExpectedSalary,
		Experience:     req.Experience,
		Resume:         req.Resume,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List dispatches on the caller's role: jobseekers see their own
// applications, recruiters see applications to their jobs.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	var (
		items []application.Application
		err   error
	)
	if role == user.RoleRecruiter {
		items, err = h.applications.ListByRecruiter(r.Context(), userID)
	} else {
		items, err = h.applications.ListByApplicant(r.Context(), userID)
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	stats, err := h.applications.StatsByRecruiter(r.Context(), recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.applications.Get(r.Context(), applicationID, userID, role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req applicationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), applicationID, application.Status(req.Status), req.Note, recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req interviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid interview time", map[string]string{"scheduled_at": "scheduled_at must be RFC3339"}))
		return
	}
	updated, err := h.applications.ScheduleInterview(r.Context(), applicationID, recruiterID, application.Interview{
		ScheduledAt: scheduledAt,
		Duration:    req.Duration,
		Type:        req.Type,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req withdrawRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.Withdraw(r.Context(), applicationID, applicantID, req.Reason)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
