package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/middleware"
	"github.com/telconnect/telecom-network/internal/service"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

type ResourceHandler struct {
	resourceService *service.ResourceService
	uploadDir       string
}

func NewResourceHandler(resourceService *service.ResourceService, uploadDir string) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService, uploadDir: uploadDir}
}

type ResourceRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// Create validates metadata and requires a multipart file named file
// before any upload is attempted.
func (h *ResourceHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req ResourceRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Title == "" || req.Description == "" {
		respondError(c, http.StatusBadRequest, "Please provide title and description.")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Please upload a file.")
		return
	}

	path, err := spoolUpload(c, file, h.uploadDir)
	if err != nil {
		logger.Log.Error("Failed to spool resource file", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Server error uploading resource.")
		return
	}
	defer os.Remove(path)

	resource, err := h.resourceService.Create(c.Request.Context(), user, req.Title, req.Description, path)
	if err != nil {
		serviceError(c, err, "", "", "Server error uploading resource.")
		return
	}

	respondData(c, http.StatusCreated, "Resource uploaded successfully.", resource)
}

func (h *ResourceHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	resources, total, err := h.resourceService.List(page, limit)
	if err != nil {
		serviceError(c, err, "", "", "Server error fetching resources.")
		return
	}

	respondPage(c, len(resources), total, page, limit, resources)
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Resource not found.")
		return
	}

	resource, err := h.resourceService.Get(id)
	if err != nil {
		serviceError(c, err, "Resource not found.", "", "Server error fetching resource.")
		return
	}

	respondData(c, http.StatusOK, "", resource)
}

// Update patches metadata and optionally replaces the stored file.
func (h *ResourceHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Resource not found.")
		return
	}

	var req ResourceRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	filePath := ""
	if file, err := c.FormFile("file"); err == nil {
		path, err := spoolUpload(c, file, h.uploadDir)
		if err != nil {
			logger.Log.Error("Failed to spool resource file", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Server error updating resource.")
			return
		}
		defer os.Remove(path)
		filePath = path
	}

	resource, err := h.resourceService.Update(c.Request.Context(), user, id, service.ResourcePatch{
		Title:       req.Title,
		Description: req.Description,
	}, filePath)
	if err != nil {
		serviceError(c, err,
			"Resource not found.",
			"You are not authorized to update this resource.",
			"Server error updating resource.")
		return
	}

	respondData(c, http.StatusOK, "Resource updated successfully.", resource)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "Resource not found.")
		return
	}

	if err := h.resourceService.Delete(c.Request.Context(), user, id); err != nil {
		serviceError(c, err,
			"Resource not found.",
			"You are not authorized to delete this resource.",
			"Server error deleting resource.")
		return
	}

	respondData(c, http.StatusOK, "Resource deleted successfully.", nil)
}
