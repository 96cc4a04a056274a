package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/api/middleware"
	"github.com/vietanh2810/franchise-api/internal/config"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

const RefreshTokenCookie = "refreshToken"

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (domain.Session, error)
	Logout(ctx context.Context, refreshToken string) error
	RegisterAdmin(ctx context.Context, user domain.User) (domain.User, error)
}

type AuthHandler struct {
	conf *config.AuthConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.AuthConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Log a user in
// @Description  Sets the accessToken and refreshToken cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if !bind(ctx, &req) {
		return
	}

	session, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	h.setSessionCookies(ctx, session)
	ctx.JSON(http.StatusOK, response.LoginResponse{User: session.User})
}

// HandleRefresh godoc
// @Summary      Renew the access token
// @Description  Consumes the refreshToken cookie and issues a new pair of tokens
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.LoginResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/refresh [post]
func (h *AuthHandler) HandleRefresh(ctx *gin.Context) {
	refreshToken, _ := ctx.Cookie(RefreshTokenCookie)

	session, err := h.svc.Refresh(ctx.Request.Context(), refreshToken)
	if err != nil {
		h.clearSessionCookies(ctx)
		response.Render(ctx, err)
		return
	}

	h.setSessionCookies(ctx, session)
	ctx.JSON(http.StatusOK, response.LoginResponse{User: session.User})
}

// HandleLogout godoc
// @Summary      Log the current user out
// @Tags         auth
// @Success      204
// @Failure      500  {object}  response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	refreshToken, _ := ctx.Cookie(RefreshTokenCookie)

	if err := h.svc.Logout(ctx.Request.Context(), refreshToken); err != nil {
		response.Render(ctx, err)
		return
	}

	h.clearSessionCookies(ctx)
	ctx.Status(http.StatusNoContent)
}

// HandleSession godoc
// @Summary      Describe the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) HandleSession(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, response.SessionResponse{Authenticated: false})
		return
	}

	ctx.JSON(http.StatusOK, response.SessionResponse{Authenticated: true, Claims: &claims})
}

// HandleRegisterAdmin godoc
// @Summary      Create the first administrator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterAdminRequest  true  "administrator"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/register-admin [post]
func (h *AuthHandler) HandleRegisterAdmin(ctx *gin.Context) {
	var req request.RegisterAdminRequest
	if !bind(ctx, &req) {
		return
	}

	user, err := h.svc.RegisterAdmin(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) setSessionCookies(ctx *gin.Context, session domain.Session) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AccessTokenCookie, session.AccessToken, int(h.conf.AccessTTL.Seconds()), "/", h.conf.CookieDomain, h.conf.CookieSecure, true)
	ctx.SetCookie(RefreshTokenCookie, session.RefreshToken, int(h.conf.RefreshTTL.Seconds()), "/api/auth", h.conf.CookieDomain, h.conf.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookies(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", h.conf.CookieDomain, h.conf.CookieSecure, true)
	ctx.SetCookie(RefreshTokenCookie, "", -1, "/api/auth", h.conf.CookieDomain, h.conf.CookieSecure, true)
}
