package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/testutil"
)

type AuthHandlerIntegrationTestSuite struct {
	HandlerSuite
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterSuccess() {
	w := s.request(http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":           "Alice Carrier",
		"email":          "alice@example.com",
		"password":       "Secret123",
		"specialization": "Fiber optics",
		"skills":         []string{"GPON", "OTDR"},
	}, "")

	s.Equal(http.StatusCreated, w.Code)

	response := s.parse(w)
	s.Equal(true, response["success"])
	s.Equal("User registered successfully.", response["message"])

	data := s.data(w)
	s.NotEmpty(data["token"])

	user := data["user"].(map[string]interface{})
	s.Equal("Alice Carrier", user["name"])
	s.Equal("alice@example.com", user["email"])
	s.Equal("professional", user["role"], "role should default to professional")
	s.NotContains(w.Body.String(), "passwordHash")
	s.NotContains(w.Body.String(), "Secret123")
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterEmailLowercased() {
	w := s.request(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "Alice@Example.COM",
		"password": "Secret123",
	}, "")

	s.Equal(http.StatusCreated, w.Code)
	user := s.data(w)["user"].(map[string]interface{})
	s.Equal("alice@example.com", user["email"])
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterMissingFields() {
	w := s.request(http.MethodPost, "/api/auth/register", map[string]string{
		"email": "alice@example.com",
	}, "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Please provide name, email, and password.", s.parse(w)["message"])
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterShortPassword() {
	w := s.request(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "12345",
	}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterAdminRoleRejected() {
	w := s.request(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "Secret123",
		"role":     "admin",
	}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterDuplicateEmail() {
	first := s.request(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "Secret123",
	}, "")
	s.Equal(http.StatusCreated, first.Code)

	// Same address with different casing must still collide
	second := s.request(http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Impostor",
		"email":    "ALICE@example.com",
		"password": "Another123",
	}, "")

	s.Equal(http.StatusBadRequest, second.Code)
	s.Equal("User with this email already exists.", s.parse(second)["message"])
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginSuccess() {
	testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	w := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "Secret123",
	}, "")

	s.Equal(http.StatusOK, w.Code)
	data := s.data(w)
	s.NotEmpty(data["token"])

	// The issued token must be accepted by a protected route
	token := data["token"].(string)
	me := s.request(http.MethodGet, "/api/users/me", nil, token)
	s.Equal(http.StatusOK, me.Code)
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginWrongPassword() {
	testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	w := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "WrongPassword",
	}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid credentials.", s.parse(w)["message"])
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginUnknownEmailSameResponse() {
	testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	wrongPassword := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "WrongPassword",
	}, "")
	unknownEmail := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "WrongPassword",
	}, "")

	// Unknown address and bad password must be indistinguishable
	s.Equal(wrongPassword.Code, unknownEmail.Code)
	s.Equal(wrongPassword.Body.String(), unknownEmail.Body.String())
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginMissingFields() {
	w := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@example.com",
	}, "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Please provide email and password.", s.parse(w)["message"])
}

func TestAuthHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerIntegrationTestSuite))
}
