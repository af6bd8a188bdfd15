package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/service"
	"github.com/telconnect/telecom-network/internal/storage"
	"github.com/telconnect/telecom-network/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func respondData(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondPage writes the paginated list envelope. pages is the ceiling of
// total over limit.
func respondPage(c *gin.Context, count int, total int64, page, limit int, data interface{}) {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"total":   total,
		"page":    page,
		"pages":   pages,
		"data":    data,
	})
}

// pagination reads page and limit query params with the 1/10 defaults.
func pagination(c *gin.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// pathID parses the :id (or named) route param as a UUID. A malformed id
// can never match a record, so it reports the same way as a missing one.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// serviceError translates service failures into the response envelope.
// notFound and forbidden carry the per-resource wording; anything
// unexpected becomes the fallback 500.
func serviceError(c *gin.Context, err error, notFound, forbidden, fallback string) {
	var violations validation.Violations
	switch {
	case errors.As(err, &violations):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": violations.Error(),
			"error":   violations,
		})
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, forbidden)
	case errors.Is(err, storage.ErrUploadFailed):
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
