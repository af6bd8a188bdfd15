package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/utils"
	"github.com/telconnect/telecom-network/internal/validation"
	"github.com/telconnect/telecom-network/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users         *repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(users *repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// RegisterInput carries the full profile accepted at registration.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           models.Role
	Specialization string
	Experience     int
	Skills         []string
	Bio            string
	Location       string
}

func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	role := input.Role
	if role == "" {
		role = models.RoleProfessional
	}

	violations := validation.Registration(input.Name, email, input.Password, role)
	violations = append(violations, validation.UserProfile(&input.Experience, input.Bio, "")...)
	if err := violations.OrNil(); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	// Pre-check on top of the storage unique index for a clean error message
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence", zap.String("email", email), zap.Error(err))
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Warn("Email already exists", zap.String("email", email))
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, "", err
	}

	user := &models.User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		PasswordHash:   hashedPassword,
		Role:           role,
		Specialization: strings.TrimSpace(input.Specialization),
		Experience:     input.Experience,
		Skills:         input.Skills,
		Bio:            input.Bio,
		Location:       strings.TrimSpace(input.Location),
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}

	if err := s.users.Create(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate token", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, "", err
	}

	logger.Log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
		zap.String("role", string(user.Role)),
	)

	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password resolve to the same error so responses cannot be used to probe
// which addresses have accounts.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email", zap.String("email", email), zap.Error(err))
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password", zap.String("email", email), zap.Error(err))
		return nil, "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("email", email),
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate token", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil, "", err
	}

	logger.Log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return user, token, nil
}
