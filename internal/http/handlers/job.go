package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"nexthire/internal/app"
	"nexthire/internal/common"
	"nexthire/internal/domain/job"
	"nexthire/internal/http/middleware"
	"nexthire/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type salaryRequest struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period"`
}

type jobRequest struct {
	Title            string        `json:"title"`
	Company          string        `json:"company"`
	Location         string        `json:"location"`
	Type             string        `json:"type"`
	Remote           bool          `json:"remote"`
	Salary           salaryRequest `json:"salary"`
	ExperienceLevel  string        `json:"experience_level"`
	Description      string        `json:"description"`
	Requirements     []string      `json:"requirements"`
	Responsibilities []string      `json:"responsibilities"`
	Benefits         []string      `json:"benefits"`
	Skills           []string      `json:"skills"`
	Status           string        `json:"status"`
	Deadline         string        `json:"deadline"`
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	posting, err := jobFromRequest(req)
	if err != nil {
		response.Error(w, err)
		return
	}
	posting.RecruiterID = recruiterID
	created, err := h.jobs.Create(r.Context(), posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	posting, err := jobFromRequest(req)
	if err != nil {
		response.Error(w, err)
		return
	}
	posting.ID = jobID
	posting.RecruiterID = recruiterID
	updated, err := h.jobs.Update(r.Context(), posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Status == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.jobs.UpdateStatus(r.Context(), recruiterID, jobID, job.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), recruiterID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// Get serves the public detail view; the id is the second path segment.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	// Public endpoint: no viewer identity, owner views go through
	// /recruiters/jobs/{id}.
	posting, err := h.jobs.Get(r.Context(), jobID, "")
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, posting)
}

func (h *JobHandler) GetByRecruiter(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	posting, err := h.jobs.GetByRecruiter(r.Context(), recruiterID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, posting)
}

func (h *JobHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := job.Filter{
		Query:           query.Get("q"),
		Location:        query.Get("location"),
		Type:            job.EmploymentType(query.Get("type")),
		ExperienceLevel: job.ExperienceLevel(query.Get("experience_level")),
		Limit:           intQuery(query.Get("limit"), 20),
		Offset:          intQuery(query.Get("offset"), 0),
	}
	if remote := query.Get("remote"); remote != "" {
		value := remote == "true"
		filter.Remote = &value
	}
	items, err := h.jobs.ListActive(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListByRecruiter(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByRecruiter(r.Context(), recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func jobFromRequest(req jobRequest) (job.Job, error) {
	posting := job.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             job.EmploymentType(strings.ToLower(strings.TrimSpace(req.Type))),
		Remote:           req.Remote,
		Salary:           job.Salary(req.Salary),
		ExperienceLevel:  job.ExperienceLevel(strings.ToLower(strings.TrimSpace(req.ExperienceLevel))),
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Skills:           req.Skills,
		Status:           job.Status(req.Status),
	}
	if req.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return job.Job{}, common.NewValidationError("invalid deadline", map[string]string{"deadline": "deadline must be RFC3339"})
		}
		posting.Deadline = deadline
	}
	return posting, nil
}

func intQuery(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
