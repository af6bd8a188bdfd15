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

type UserHandler struct {
	userService *service.UserService
	uploadDir   string
}

func NewUserHandler(userService *service.UserService, uploadDir string) *UserHandler {
	return &UserHandler{userService: userService, uploadDir: uploadDir}
}

// UpdateProfileRequest binds from JSON or multipart form. Experience is a
// pointer so a client sending 0 still overwrites the stored value.
type UpdateProfileRequest struct {
	Name           string   `json:"name" form:"name"`
	Specialization string   `json:"specialization" form:"specialization"`
	Experience     *int     `json:"experience" form:"experience"`
	Skills         []string `json:"skills" form:"skills"`
	Bio            string   `json:"bio" form:"bio"`
	Location       string   `json:"location" form:"location"`
	Password       string   `json:"password" form:"password"`
}

// Me returns the caller's own record.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	respondData(c, http.StatusOK, "", user)
}

// UpdateMe applies a partial update to the caller's record, including an
// optional profile image file named profileImage.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	imagePath := ""
	if file, err := c.FormFile("profileImage"); err == nil {
		path, err := spoolUpload(c, file, h.uploadDir)
		if err != nil {
			logger.Log.Error("Failed to spool profile image", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Server error updating profile.")
			return
		}
		defer os.Remove(path)
		imagePath = path
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user, service.ProfilePatch{
		Name:           req.Name,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Bio:            req.Bio,
		Location:       req.Location,
		Password:       req.Password,
	}, imagePath)
	if err != nil {
		serviceError(c, err, "User not found.", "", "Server error updating profile.")
		return
	}

	respondData(c, http.StatusOK, "Profile updated successfully.", updated)
}

// GetByID returns any user's public record.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		serviceError(c, err, "User not found.", "", "Server error fetching user.")
		return
	}

	respondData(c, http.StatusOK, "", user)
}

// List returns all users. Admin only, enforced in the route table.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		serviceError(c, err, "", "", "Server error fetching users.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"data":    users,
	})
}

// Delete removes a user. Admin only, enforced in the route table.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusNotFound, "User not found.")
		return
	}

	if err := h.userService.Delete(id); err != nil {
		serviceError(c, err, "User not found.", "", "Server error deleting user.")
		return
	}

	respondData(c, http.StatusOK, "User deleted successfully.", nil)
}
