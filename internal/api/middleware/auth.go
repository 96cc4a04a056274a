package middleware

import (
	"crypto/rsa"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/apperr"
	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper"
)

const (
	AccessTokenCookie = "accessToken"

	claimsKey = "claims"
)

var (
	ErrAuthRequired = apperr.Unauthorized("AUTHENTICATION_REQUIRED", "authentication required")
	ErrInvalidToken = apperr.Unauthorized("INVALID_TOKEN", "invalid token")
	ErrTokenExpired = apperr.Unauthorized("TOKEN_EXPIRED", "token expired")
)

type Authenticator struct {
	publicKey *rsa.PublicKey
}

func NewAuthenticator(publicKey *rsa.PublicKey) *Authenticator {
	return &Authenticator{
		publicKey: publicKey,
	}
}

// VerifyJWT aborts with 401 unless the request carries a valid access token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := a.authenticate(ctx)
		if err != nil {
			response.Render(ctx, err)
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// OptionalJWT stores the claims when the token is valid and otherwise lets the
// request through anonymously.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, err := a.authenticate(ctx); err == nil {
			ctx.Set(claimsKey, claims)
		}

		ctx.Next()
	}
}

func (a *Authenticator) authenticate(ctx *gin.Context) (domain.Claims, error) {
	token := tokenFromRequest(ctx)
	if token == "" {
		return domain.Claims{}, ErrAuthRequired
	}

	claims, err := jwthelper.VerifyToken(a.publicKey, token)
	if err != nil {
		if errors.Is(err, jwthelper.ErrTokenExpired) {
			return domain.Claims{}, ErrTokenExpired
		}
		return domain.Claims{}, ErrInvalidToken
	}

	return claims, nil
}

func tokenFromRequest(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// RequireAdmin must run after VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			response.Render(ctx, ErrAuthRequired)
			return
		}
		if err := permission.RequireAdmin(claims); err != nil {
			response.Render(ctx, err)
			return
		}

		ctx.Next()
	}
}

// ClaimsFrom returns the claims stored by VerifyJWT or OptionalJWT.
func ClaimsFrom(ctx *gin.Context) (domain.Claims, bool) {
	value, ok := ctx.Get(claimsKey)
	if !ok {
		return domain.Claims{}, false
	}
	claims, ok := value.(domain.Claims)

	return claims, ok
}

// SetClaims is used by tests that bypass token verification.
func SetClaims(ctx *gin.Context, claims domain.Claims) {
	ctx.Set(claimsKey, claims)
}
