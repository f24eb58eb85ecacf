package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"asset_map/internal/db"
	"asset_map/internal/domain"
	"asset_map/internal/repository"
	"asset_map/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	gdb    *gorm.DB
	deps   Deps
}

func newTestServer(t *testing.T, cache *utils.AssetCache) *testServer {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))

	tokens, err := utils.NewTokenIssuer("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	deps := Deps{
		Users:  repository.NewUserDirectory(gdb),
		Assets: repository.NewAssetLedger(gdb),
		Tokens: tokens,
		Cache:  cache,
	}
	r := gin.New()
	RegisterRoutes(r, deps)
	return &testServer{t: t, router: r, gdb: gdb, deps: deps}
}

// do sends a JSON request, with a bearer token when token is not empty
func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
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

// postForm sends a form-encoded POST
func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the API
func (s *testServer) register(username, email, password string) domain.User {
	s.t.Helper()
	w := s.do(http.MethodPost, "/user/", "", domain.NewUser{Username: username, Email: email, Password: password})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var user domain.User
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

// login returns an access token for the user
func (s *testServer) login(username, password string) string {
	s.t.Helper()
	w := s.postForm("/user/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp TokenResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

// signup registers and logs a user in
func (s *testServer) signup(username string) (domain.User, string) {
	s.t.Helper()
	user := s.register(username, username+"@example.com", username+"-password")
	return user, s.login(username, username+"-password")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["detail"]
}
