package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type FranchiseService interface {
	List(ctx context.Context, claims domain.Claims) ([]domain.Franchise, error)
	Get(ctx context.Context, claims domain.Claims, id string) (domain.Franchise, error)
	Create(ctx context.Context, claims domain.Claims, franchise domain.Franchise) (domain.Franchise, error)
	Update(ctx context.Context, claims domain.Claims, id string, update domain.FranchiseUpdate) (domain.Franchise, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
}

type FranchiseHandler struct {
	svc FranchiseService
}

func NewFranchiseHandler(svc FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{
		svc: svc,
	}
}

// HandleListFranchises godoc
// @Summary      List franchises
// @Description  Administrators see every franchise, tenant users only their own
// @Tags         franchises
// @Produce      json
// @Success      200  {array}   domain.Franchise
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /franchises [get]
func (h *FranchiseHandler) HandleListFranchises(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	franchises, err := h.svc.List(ctx.Request.Context(), claims)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, franchises)
}

// HandleGetFranchise godoc
// @Summary      Get a franchise
// @Tags         franchises
// @Produce      json
// @Param        id   path      string  true  "franchise ID"
// @Success      200  {object}  domain.Franchise
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /franchises/{id} [get]
func (h *FranchiseHandler) HandleGetFranchise(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	franchise, err := h.svc.Get(ctx.Request.Context(), claims, id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, franchise)
}

// HandleCreateFranchise godoc
// @Summary      Create a franchise
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateFranchiseRequest  true  "franchise"
// @Success      201      {object}  domain.Franchise
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /franchises [post]
func (h *FranchiseHandler) HandleCreateFranchise(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	var req request.CreateFranchiseRequest
	if !bind(ctx, &req) {
		return
	}

	franchise, err := h.svc.Create(ctx.Request.Context(), claims, req.Franchise())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, franchise)
}

// HandleUpdateFranchise godoc
// @Summary      Update a franchise
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "franchise ID"
// @Param        request  body      request.UpdateFranchiseRequest  true  "fields to change"
// @Success      200      {object}  domain.Franchise
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /franchises/{id} [patch]
func (h *FranchiseHandler) HandleUpdateFranchise(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateFranchiseRequest
	if !bind(ctx, &req) {
		return
	}

	franchise, err := h.svc.Update(ctx.Request.Context(), claims, id, req.Update())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, franchise)
}

// HandleDeleteFranchise godoc
// @Summary      Delete a franchise with its stock, commands and members
// @Tags         franchises
// @Param        id   path      string  true  "franchise ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /franchises/{id} [delete]
func (h *FranchiseHandler) HandleDeleteFranchise(ctx *gin.Context) {
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
