package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/telconnect/telecom-network/internal/testutil"
	"github.com/telconnect/telecom-network/pkg/logger"
)

// HandlerSuite is the shared base for the handler integration suites: the
// complete application mounted on an in-memory database with a fake blob
// store.
type HandlerSuite struct {
	suite.Suite
	testDB   *testutil.TestDatabase
	uploader *testutil.FakeUploader
	router   *gin.Engine
}

func (s *HandlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(logger.Init(false))

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.uploader = &testutil.FakeUploader{}
	s.router = testutil.NewServer(s.T(), s.testDB.DB, s.uploader)
}

func (s *HandlerSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *HandlerSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
	s.uploader.Uploads = nil
	s.uploader.Deletes = nil
	s.uploader.FailUpload = false
	s.uploader.FailDelete = false
}

// request performs a JSON request against the mounted application.
func (s *HandlerSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// multipart performs a multipart form request against the application.
func (s *HandlerSuite) multipart(method, path string, fields map[string]string, fileField, fileName string, content []byte, token string) *httptest.ResponseRecorder {
	body, contentType := testutil.MultipartBody(s.T(), fields, fileField, fileName, content)

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// parse decodes the response envelope.
func (s *HandlerSuite) parse(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// data extracts the data object from a response envelope.
func (s *HandlerSuite) data(w *httptest.ResponseRecorder) map[string]interface{} {
	response := s.parse(w)
	data, ok := response["data"].(map[string]interface{})
	s.Require().True(ok, "response should carry a data object: %s", w.Body.String())
	return data
}
