package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/service"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Role           string   `json:"role"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	Skills         []string `json:"skills"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Registration request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide name, email, and password.")
		return
	}

	user, token, err := h.authService.Register(service.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           models.Role(req.Role),
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Bio:            req.Bio,
		Location:       req.Location,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			respondError(c, http.StatusBadRequest, "User with this email already exists.")
			return
		}
		serviceError(c, err, "", "", "Server error during registration.")
		return
	}

	respondData(c, http.StatusCreated, "User registered successfully.", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Login request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide email and password.")
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		serviceError(c, err, "", "", "Server error during login.")
		return
	}

	respondData(c, http.StatusOK, "Login successful.", gin.H{
		"user":  user,
		"token": token,
	})
}
