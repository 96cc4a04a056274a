package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type UserService interface {
	List(ctx context.Context, claims domain.Claims, franchiseID string) ([]domain.User, error)
	Get(ctx context.Context, claims domain.Claims, id string) (domain.User, error)
	Create(ctx context.Context, claims domain.Claims, user domain.User) (domain.User, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List franchise members
// @Tags         users
// @Produce      json
// @Param        franchise_id  query     string  false  "franchise (administrators only)"
// @Success      200           {array}   domain.User
// @Failure      401           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	franchiseID, ok := franchiseQuery(ctx)
	if !ok {
		return
	}

	users, err := h.svc.List(ctx.Request.Context(), claims, franchiseID)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleGetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "user ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /users/{id} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	user, err := h.svc.Get(ctx.Request.Context(), claims, id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Description  Tenant users create members of their own franchise only
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest  true  "user"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	var req request.CreateUserRequest
	if !bind(ctx, &req) {
		return
	}

	user, err := h.svc.Create(ctx.Request.Context(), claims, req.User())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        id   path      string  true  "user ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /users/{id} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), claims, id); err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
