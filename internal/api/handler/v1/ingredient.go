package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type IngredientService interface {
	List(ctx context.Context, filter domain.IngredientFilter) ([]domain.Ingredient, error)
	Get(ctx context.Context, id string) (domain.Ingredient, error)
	Create(ctx context.Context, ingredient domain.Ingredient, categoryIDs, newCategories []string) (domain.Ingredient, error)
	Update(ctx context.Context, id string, update domain.IngredientUpdate) (domain.Ingredient, error)
	Delete(ctx context.Context, id string) error
}

type IngredientHandler struct {
	svc IngredientService
}

func NewIngredientHandler(svc IngredientService) *IngredientHandler {
	return &IngredientHandler{
		svc: svc,
	}
}

// HandleListIngredients godoc
// @Summary      List ingredients
// @Tags         ingredients
// @Produce      json
// @Param        supplier_id  query     string  false  "only this supplier"
// @Param        category_id  query     string  false  "only this category"
// @Success      200          {array}   domain.Ingredient
// @Router       /ingredients [get]
func (h *IngredientHandler) HandleListIngredients(ctx *gin.Context) {
	filter := request.IngredientFilterRequest{
		SupplierID: ctx.Query("supplier_id"),
		CategoryID: ctx.Query("category_id"),
	}
	if err := filter.Validate(); err != nil {
		response.Render(ctx, err)
		return
	}

	ingredients, err := h.svc.List(ctx.Request.Context(), domain.IngredientFilter{
		SupplierID: filter.SupplierID,
		CategoryID: filter.CategoryID,
	})
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredients)
}

// HandleGetIngredient godoc
// @Summary      Get an ingredient
// @Tags         ingredients
// @Produce      json
// @Param        id   path      string  true  "ingredient ID"
// @Success      200  {object}  domain.Ingredient
// @Failure      404  {object}  response.Err
// @Router       /ingredients/{id} [get]
func (h *IngredientHandler) HandleGetIngredient(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	ingredient, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredient)
}

// HandleCreateIngredient godoc
// @Summary      Create an ingredient
// @Description  new_categories are created together with the ingredient
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateIngredientRequest  true  "ingredient"
// @Success      201      {object}  domain.Ingredient
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /ingredients [post]
func (h *IngredientHandler) HandleCreateIngredient(ctx *gin.Context) {
	var req request.CreateIngredientRequest
	if !bind(ctx, &req) {
		return
	}

	ingredient, err := h.svc.Create(ctx.Request.Context(), req.Ingredient(), req.CategoryIDs, req.NewCategories)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ingredient)
}

// HandleUpdateIngredient godoc
// @Summary      Update an ingredient
// @Description  category_ids replaces every category link when present
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "ingredient ID"
// @Param        request  body      request.UpdateIngredientRequest  true  "fields to change"
// @Success      200      {object}  domain.Ingredient
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /ingredients/{id} [patch]
func (h *IngredientHandler) HandleUpdateIngredient(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateIngredientRequest
	if !bind(ctx, &req) {
		return
	}

	ingredient, err := h.svc.Update(ctx.Request.Context(), id, req.Update())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredient)
}

// HandleDeleteIngredient godoc
// @Summary      Delete an ingredient with its stock rows
// @Tags         ingredients
// @Param        id   path      string  true  "ingredient ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /ingredients/{id} [delete]
func (h *IngredientHandler) HandleDeleteIngredient(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
