package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/testutil"
)

type PostHandlerIntegrationTestSuite struct {
	HandlerSuite
}

func (s *PostHandlerIntegrationTestSuite) TestCreatePost() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	w := s.request(http.MethodPost, "/api/posts", map[string]string{
		"title":    "Fiber splicing tips",
		"content":  "Always clean the cleaver.",
		"category": "Fiber",
	}, testutil.TokenFor(s.T(), user))

	s.Equal(http.StatusCreated, w.Code)
	data := s.data(w)
	s.Equal("Fiber splicing tips", data["title"])

	author, ok := data["author"].(map[string]interface{})
	s.Require().True(ok, "author must be populated on create")
	s.Equal("Alice", author["name"])
	s.NotContains(w.Body.String(), "passwordHash")
}

func (s *PostHandlerIntegrationTestSuite) TestCreatePostRequiresAuth() {
	w := s.request(http.MethodPost, "/api/posts", map[string]string{
		"title":    "Fiber splicing tips",
		"content":  "Always clean the cleaver.",
		"category": "Fiber",
	}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestCreatePostInvalidCategory() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	w := s.request(http.MethodPost, "/api/posts", map[string]string{
		"title":    "Fiber splicing tips",
		"content":  "Always clean the cleaver.",
		"category": "Gardening",
	}, testutil.TokenFor(s.T(), user))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestCreatePostMissingTitle() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	w := s.request(http.MethodPost, "/api/posts", map[string]string{
		"content":  "Always clean the cleaver.",
		"category": "Fiber",
	}, testutil.TokenFor(s.T(), user))

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestListPostsPagination() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	for i := 0; i < 12; i++ {
		testutil.CreatePost(s.T(), s.testDB.DB, user, fmt.Sprintf("Post %02d", i), models.CategoryGeneral)
	}

	w := s.request(http.MethodGet, "/api/posts?page=2&limit=5", nil, "")

	s.Equal(http.StatusOK, w.Code)
	response := s.parse(w)
	s.Equal(float64(5), response["count"])
	s.Equal(float64(12), response["total"])
	s.Equal(float64(2), response["page"])
	s.Equal(float64(3), response["pages"])

	rows, ok := response["data"].([]interface{})
	s.Require().True(ok)
	s.Len(rows, 5)
}

func (s *PostHandlerIntegrationTestSuite) TestListPostsCategoryFilter() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	testutil.CreatePost(s.T(), s.testDB.DB, user, "Fiber post", models.CategoryFiber)
	testutil.CreatePost(s.T(), s.testDB.DB, user, "5G post", models.Category5G)

	w := s.request(http.MethodGet, "/api/posts?category=Fiber", nil, "")

	s.Equal(http.StatusOK, w.Code)
	response := s.parse(w)
	s.Equal(float64(1), response["total"])

	rows := response["data"].([]interface{})
	s.Require().Len(rows, 1)
	s.Equal("Fiber post", rows[0].(map[string]interface{})["title"])
}

func (s *PostHandlerIntegrationTestSuite) TestGetPostNotFound() {
	w := s.request(http.MethodGet, "/api/posts/00000000-0000-0000-0000-000000000000", nil, "")

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Post not found.", s.parse(w)["message"])
}

func (s *PostHandlerIntegrationTestSuite) TestUpdatePostAsAuthor() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, user, "Old title", models.CategoryGeneral)

	w := s.request(http.MethodPut, "/api/posts/"+post.ID.String(), map[string]string{
		"title": "New title",
	}, testutil.TokenFor(s.T(), user))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("New title", s.data(w)["title"])

	// Saving a post must not write its preloaded author projection back
	// to the users table.
	var author models.User
	s.Require().NoError(s.testDB.DB.First(&author, "id = ?", user.ID).Error)
	s.Equal(user.PasswordHash, author.PasswordHash)
}

func (s *PostHandlerIntegrationTestSuite) TestUpdatePostAsOtherUser() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	other := testutil.CreateUser(s.T(), s.testDB.DB, "Bob", "bob@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Old title", models.CategoryGeneral)

	w := s.request(http.MethodPut, "/api/posts/"+post.ID.String(), map[string]string{
		"title": "Hijacked",
	}, testutil.TokenFor(s.T(), other))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestUpdatePostAdminStillForbidden() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	admin := testutil.CreateUser(s.T(), s.testDB.DB, "Root", "root@example.com", "Secret123", models.RoleAdmin)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Old title", models.CategoryGeneral)

	// Only the author may edit content; admins can only remove posts.
	w := s.request(http.MethodPut, "/api/posts/"+post.ID.String(), map[string]string{
		"title": "Moderated",
	}, testutil.TokenFor(s.T(), admin))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestDeletePostAsAuthorRemovesComments() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	commenter := testutil.CreateUser(s.T(), s.testDB.DB, "Bob", "bob@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Doomed", models.CategoryGeneral)
	testutil.CreateComment(s.T(), s.testDB.DB, post, commenter, "first")
	testutil.CreateComment(s.T(), s.testDB.DB, post, commenter, "second")

	w := s.request(http.MethodDelete, "/api/posts/"+post.ID.String(), nil, testutil.TokenFor(s.T(), author))

	s.Equal(http.StatusOK, w.Code)

	var remaining int64
	s.Require().NoError(s.testDB.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&remaining).Error)
	s.Equal(int64(0), remaining)
}

func (s *PostHandlerIntegrationTestSuite) TestDeletePostAsAdmin() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	admin := testutil.CreateUser(s.T(), s.testDB.DB, "Root", "root@example.com", "Secret123", models.RoleAdmin)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Doomed", models.CategoryGeneral)

	w := s.request(http.MethodDelete, "/api/posts/"+post.ID.String(), nil, testutil.TokenFor(s.T(), admin))

	s.Equal(http.StatusOK, w.Code)

	get := s.request(http.MethodGet, "/api/posts/"+post.ID.String(), nil, "")
	s.Equal(http.StatusNotFound, get.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestDeletePostAsOtherUser() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	other := testutil.CreateUser(s.T(), s.testDB.DB, "Bob", "bob@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Safe", models.CategoryGeneral)

	w := s.request(http.MethodDelete, "/api/posts/"+post.ID.String(), nil, testutil.TokenFor(s.T(), other))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestAddComment() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	commenter := testutil.CreateUser(s.T(), s.testDB.DB, "Bob", "bob@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Discussion", models.CategoryGeneral)

	w := s.request(http.MethodPost, "/api/posts/"+post.ID.String()+"/comments", map[string]string{
		"content": "Great writeup.",
	}, testutil.TokenFor(s.T(), commenter))

	s.Equal(http.StatusCreated, w.Code)
	data := s.data(w)
	s.Equal("Great writeup.", data["content"])

	user, ok := data["user"].(map[string]interface{})
	s.Require().True(ok, "comment user must be populated")
	s.Equal("Bob", user["name"])
}

func (s *PostHandlerIntegrationTestSuite) TestAddCommentEmptyContent() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, user, "Discussion", models.CategoryGeneral)

	w := s.request(http.MethodPost, "/api/posts/"+post.ID.String()+"/comments", map[string]string{
		"content": "",
	}, testutil.TokenFor(s.T(), user))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Please provide comment content.", s.parse(w)["message"])
}

func (s *PostHandlerIntegrationTestSuite) TestAddCommentMissingPost() {
	user := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)

	w := s.request(http.MethodPost, "/api/posts/00000000-0000-0000-0000-000000000000/comments", map[string]string{
		"content": "Into the void.",
	}, testutil.TokenFor(s.T(), user))

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestListComments() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Discussion", models.CategoryGeneral)
	testutil.CreateComment(s.T(), s.testDB.DB, post, author, "first")
	testutil.CreateComment(s.T(), s.testDB.DB, post, author, "second")

	w := s.request(http.MethodGet, "/api/posts/"+post.ID.String()+"/comments", nil, "")

	s.Equal(http.StatusOK, w.Code)
	response := s.parse(w)
	s.Equal(float64(2), response["count"])
}

func (s *PostHandlerIntegrationTestSuite) TestListCommentsMissingPost() {
	w := s.request(http.MethodGet, "/api/posts/00000000-0000-0000-0000-000000000000/comments", nil, "")

	s.Equal(http.StatusOK, w.Code)
	response := s.parse(w)
	s.Equal(float64(0), response["count"])
}

func (s *PostHandlerIntegrationTestSuite) TestDeleteCommentAsOwner() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Discussion", models.CategoryGeneral)
	comment := testutil.CreateComment(s.T(), s.testDB.DB, post, author, "delete me")

	w := s.request(http.MethodDelete, "/api/posts/"+post.ID.String()+"/comments/"+comment.ID.String(), nil, testutil.TokenFor(s.T(), author))

	s.Equal(http.StatusOK, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestDeleteCommentAsAdmin() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	admin := testutil.CreateUser(s.T(), s.testDB.DB, "Root", "root@example.com", "Secret123", models.RoleAdmin)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Discussion", models.CategoryGeneral)
	comment := testutil.CreateComment(s.T(), s.testDB.DB, post, author, "spam")

	w := s.request(http.MethodDelete, "/api/posts/"+post.ID.String()+"/comments/"+comment.ID.String(), nil, testutil.TokenFor(s.T(), admin))

	s.Equal(http.StatusOK, w.Code)
}

func (s *PostHandlerIntegrationTestSuite) TestDeleteCommentAsOtherUser() {
	author := testutil.CreateUser(s.T(), s.testDB.DB, "Alice", "alice@example.com", "Secret123", models.RoleProfessional)
	other := testutil.CreateUser(s.T(), s.testDB.DB, "Bob", "bob@example.com", "Secret123", models.RoleProfessional)
	post := testutil.CreatePost(s.T(), s.testDB.DB, author, "Discussion", models.CategoryGeneral)
	comment := testutil.CreateComment(s.T(), s.testDB.DB, post, author, "mine")

	w := s.request(http.MethodDelete, "/api/posts/"+post.ID.String()+"/comments/"+comment.ID.String(), nil, testutil.TokenFor(s.T(), other))

	s.Equal(http.StatusForbidden, w.Code)
}

func TestPostHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerIntegrationTestSuite))
}
