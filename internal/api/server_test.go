package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vietanh2810/franchise-api/internal/config"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper/jwttest"
)

func newTestServer(t *testing.T, issueTokens bool, origins ...string) *Server {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	kp := jwttest.NewKeyPair(t)
	auth := &config.AuthConfig{PublicKey: kp.EncodedPublic, AccessTTL: time.Minute, RefreshTTL: time.Hour}
	if issueTokens {
		auth.PrivateKey = kp.EncodedPrivate
	}

	s, err := NewServer(&config.AppConfig{
		API:      &config.APIConfig{Environment: "test", Port: "0", BaseURL: "localhost", AllowedCORSDomains: origins},
		Gin:      &config.GinConfig{Mode: "test"},
		Postgres: &config.PostgresConfig{},
		Redis:    &config.RedisConfig{},
		Auth:     auth,
	}, db, rdb)
	require.NoError(t, err)

	return s
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	return w
}

func TestNewServer_Routes(t *testing.T) {
	s := newTestServer(t, true, "http://localhost:3000")

	routes := make(map[string]bool)
	for _, r := range s.Router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"POST /api/auth/login",
		"POST /api/auth/refresh",
		"GET /api/auth/session",
		"GET /api/franchises",
		"DELETE /api/franchises/:id",
		"POST /api/ingredients",
		"GET /api/stocks/export",
		"POST /api/stocks/import",
		"PATCH /api/commands/:id/status",
		"GET /api/commands/:id/track",
		"GET /healthz",
		"GET /metrics",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestNewServer_WithoutPrivateKey(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodPost, "/api/auth/login").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/auth/session").Code)
}

func TestNewServer_RequiresToken(t *testing.T) {
	s := newTestServer(t, true, "http://localhost:3000")

	w := serve(s, http.MethodGet, "/api/franchises")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	metrics := serve(s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `franchise_api_http_requests_total{method="GET",route="/api/franchises",status="401"} 1`)
}

func TestNewServer_Swagger(t *testing.T) {
	s := newTestServer(t, false)

	w := serve(s, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/commands/{id}/track"`)
}

func TestNewServer_WithoutCORSOrigins(t *testing.T) {
	var s *Server
	require.NotPanics(t, func() { s = newTestServer(t, false) })

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
