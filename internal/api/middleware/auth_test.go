package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper/jwttest"
)

func newRouter(a *Authenticator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := append([]gin.HandlerFunc{a.VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		claims, _ := ClaimsFrom(ctx)
		ctx.JSON(http.StatusOK, claims)
	})
	r.GET("/private", handlers...)

	r.GET("/optional", a.OptionalJWT(), func(ctx *gin.Context) {
		_, ok := ClaimsFrom(ctx)
		ctx.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	return r
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	code, _ := body["code"].(string)

	return code
}

func TestVerifyJWT(t *testing.T) {
	kp := jwttest.NewKeyPair(t)
	other := jwttest.NewKeyPair(t)
	franchiseID := "F2"
	user := domain.User{ID: "u-1", Email: "op@example.com", Role: domain.RoleStaff, FranchiseID: &franchiseID}

	valid, err := jwthelper.GenerateAccessToken(kp.Private, user, time.Minute)
	require.NoError(t, err)
	expired, err := jwthelper.GenerateAccessToken(kp.Private, user, -time.Minute)
	require.NoError(t, err)
	forged, err := jwthelper.GenerateAccessToken(other.Private, user, time.Minute)
	require.NoError(t, err)

	r := newRouter(NewAuthenticator(&kp.Private.PublicKey))

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		status int
		code   string
	}{
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: valid}) }, http.StatusOK, ""},
		{"bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+valid) }, http.StatusOK, ""},
		{"missing", func(req *http.Request) {}, http.StatusUnauthorized, "AUTHENTICATION_REQUIRED"},
		{"expired", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: expired}) }, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"wrong key", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: forged}) }, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"garbage", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "abc"}) }, http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, w))
				return
			}

			var claims domain.Claims
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claims))
			assert.Equal(t, "u-1", claims.Subject)
			require.NotNil(t, claims.FranchiseID)
			assert.Equal(t, "F2", *claims.FranchiseID)
		})
	}
}

func TestOptionalJWT(t *testing.T) {
	kp := jwttest.NewKeyPair(t)
	r := newRouter(NewAuthenticator(&kp.Private.PublicKey))

	valid, err := jwthelper.GenerateAccessToken(kp.Private, domain.User{ID: "a"}, time.Minute)
	require.NoError(t, err)

	for token, want := range map[string]bool{"": false, "broken": false, valid: true} {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, want, body["authenticated"])
	}
}

func TestRequireAdmin(t *testing.T) {
	kp := jwttest.NewKeyPair(t)
	r := newRouter(NewAuthenticator(&kp.Private.PublicKey), RequireAdmin())

	franchiseID := "F1"
	tenant, err := jwthelper.GenerateAccessToken(kp.Private, domain.User{ID: "t", FranchiseID: &franchiseID}, time.Minute)
	require.NoError(t, err)
	admin, err := jwthelper.GenerateAccessToken(kp.Private, domain.User{ID: "a", Role: domain.RoleAdmin}, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tenant)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ADMIN_ONLY", errorCode(t, w))

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
