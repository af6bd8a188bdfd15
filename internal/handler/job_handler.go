package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/middleware"
	"github.com/telconnect/telecom-network/internal/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type JobRequest struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	RequiredSkills []string `json:"requiredSkills"`
}

func (h *JobHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Title == "" || req.Company == "" || req.Description == "" || req.Location == "" {
		respondError(c, http.StatusBadRequest, "Please provide title, company, description, and location.")
		return
	}

	job, err := h.jobService.Create(user, service.JobInput{
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		serviceError(c, err, "", "", "Server error creating job.")
		return
	}

	respondData(c, http.StatusCreated, "Job posted successfully.", job)
}

func (h *JobHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	location := c.Query("location")

	jobs, total, err := h.jobService.List(location, page, limit)
	if err != nil {
		serviceError(c, err, "", "", "Server error fetching jobs.")
		return
	}

	respondPage(c, len(jobs), total, page, limit, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Job not found.")
		return
	}

	job, err := h.jobService.Get(id)
	if err != nil {
		serviceError(c, err, "Job not found.", "", "Server error fetching job.")
		return
	}

	respondData(c, http.StatusOK, "", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Job not found.")
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	job, err := h.jobService.Update(user, id, service.JobPatch{
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		serviceError(c, err,
			"Job not found.",
			"You are not authorized to update this job.",
			"Server error updating job.")
		return
	}

	respondData(c, http.StatusOK, "Job updated successfully.", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Job not found.")
		return
	}

	if err := h.jobService.Delete(user, id); err != nil {
		serviceError(c, err,
			"Job not found.",
			"You are not authorized to delete this job.",
			"Server error deleting job.")
		return
	}

	respondData(c, http.StatusOK, "Job deleted successfully.", nil)
}
