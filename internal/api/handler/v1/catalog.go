package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type SupplierService interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	Get(ctx context.Context, id string) (domain.Supplier, error)
	Create(ctx context.Context, supplier domain.Supplier) (domain.Supplier, error)
	Update(ctx context.Context, id string, update domain.SupplierUpdate) (domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (domain.Category, error)
	Create(ctx context.Context, name string) (domain.Category, error)
	Rename(ctx context.Context, id, name string) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CatalogHandler serves suppliers and ingredient categories. Writes are
// restricted to administrators by the router.
type CatalogHandler struct {
	suppliers  SupplierService
	categories CategoryService
}

func NewCatalogHandler(suppliers SupplierService, categories CategoryService) *CatalogHandler {
	return &CatalogHandler{
		suppliers:  suppliers,
		categories: categories,
	}
}

// HandleListSuppliers godoc
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}   domain.Supplier
// @Router       /suppliers [get]
func (h *CatalogHandler) HandleListSuppliers(ctx *gin.Context) {
	suppliers, err := h.suppliers.List(ctx.Request.Context())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, suppliers)
}

// HandleGetSupplier godoc
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id   path      string  true  "supplier ID"
// @Success      200  {object}  domain.Supplier
// @Failure      404  {object}  response.Err
// @Router       /suppliers/{id} [get]
func (h *CatalogHandler) HandleGetSupplier(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	supplier, err := h.suppliers.Get(ctx.Request.Context(), id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, supplier)
}

// HandleCreateSupplier godoc
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSupplierRequest  true  "supplier"
// @Success      201      {object}  domain.Supplier
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /suppliers [post]
func (h *CatalogHandler) HandleCreateSupplier(ctx *gin.Context) {
	var req request.CreateSupplierRequest
	if !bind(ctx, &req) {
		return
	}

	supplier, err := h.suppliers.Create(ctx.Request.Context(), req.Supplier())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, supplier)
}

// HandleUpdateSupplier godoc
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "supplier ID"
// @Param        request  body      request.UpdateSupplierRequest  true  "fields to change"
// @Success      200      {object}  domain.Supplier
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /suppliers/{id} [patch]
func (h *CatalogHandler) HandleUpdateSupplier(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateSupplierRequest
	if !bind(ctx, &req) {
		return
	}

	supplier, err := h.suppliers.Update(ctx.Request.Context(), id, req.Update())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, supplier)
}

// HandleDeleteSupplier godoc
// @Summary      Delete a supplier
// @Description  Refused while ingredients still reference the supplier
// @Tags         suppliers
// @Param        id   path      string  true  "supplier ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /suppliers/{id} [delete]
func (h *CatalogHandler) HandleDeleteSupplier(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.suppliers.Delete(ctx.Request.Context(), id); err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListCategories godoc
// @Summary      List ingredient categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.Category
// @Router       /categories [get]
func (h *CatalogHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.categories.List(ctx.Request.Context())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  response.Err
// @Router       /categories/{id} [get]
func (h *CatalogHandler) HandleGetCategory(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	category, err := h.categories.Get(ctx.Request.Context(), id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body      request.CategoryRequest  true  "category"
// @Success      201      {object}  domain.Category
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /categories [post]
func (h *CatalogHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CategoryRequest
	if !bind(ctx, &req) {
		return
	}

	category, err := h.categories.Create(ctx.Request.Context(), req.Name)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleRenameCategory godoc
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "category ID"
// @Param        request  body      request.CategoryRequest  true  "new name"
// @Success      200      {object}  domain.Category
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /categories/{id} [patch]
func (h *CatalogHandler) HandleRenameCategory(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req request.CategoryRequest
	if !bind(ctx, &req) {
		return
	}

	category, err := h.categories.Rename(ctx.Request.Context(), id, req.Name)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Tags         categories
// @Param        id   path      string  true  "category ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /categories/{id} [delete]
func (h *CatalogHandler) HandleDeleteCategory(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := h.categories.Delete(ctx.Request.Context(), id); err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
