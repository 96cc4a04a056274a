package v1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxImportSize   = 5 << 20

	multipartOverhead = 64 << 10
)

type StockService interface {
	List(ctx context.Context, claims domain.Claims, franchiseID string) ([]domain.StockFranchise, error)
	Get(ctx context.Context, claims domain.Claims, id string) (domain.StockFranchise, error)
	Create(ctx context.Context, claims domain.Claims, stock domain.StockFranchise) (domain.StockFranchise, error)
	UpdateQuantity(ctx context.Context, claims domain.Claims, id string, quantity float64) (domain.StockFranchise, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
	Export(ctx context.Context, claims domain.Claims, franchiseID string, w io.Writer) (domain.Franchise, error)
	Import(ctx context.Context, claims domain.Claims, franchiseID string, r io.Reader) (int, error)
}

type StockHandler struct {
	svc StockService
}

func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

// HandleListStocks godoc
// @Summary      List the stock of a franchise
// @Tags         stocks
// @Produce      json
// @Param        franchise_id  query     string  false  "franchise (required for administrators)"
// @Success      200           {array}   domain.StockFranchise
// @Failure      400           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Router       /stocks [get]
func (h *StockHandler) HandleListStocks(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	franchiseID, ok := franchiseQuery(ctx)
	if !ok {
		return
	}

	stocks, err := h.svc.List(ctx.Request.Context(), claims, franchiseID)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stocks)
}

// HandleGetStock godoc
// @Summary      Get a stock entry
// @Tags         stocks
// @Produce      json
// @Param        id   path      string  true  "stock ID"
// @Success      200  {object}  domain.StockFranchise
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /stocks/{id} [get]
func (h *StockHandler) HandleGetStock(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	stock, err := h.svc.Get(ctx.Request.Context(), claims, id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleCreateStock godoc
// @Summary      Add an ingredient to a franchise stock
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStockRequest  true  "stock entry"
// @Success      201      {object}  domain.StockFranchise
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /stocks [post]
func (h *StockHandler) HandleCreateStock(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	var req request.CreateStockRequest
	if !bind(ctx, &req) {
		return
	}

	stock, err := h.svc.Create(ctx.Request.Context(), claims, domain.StockFranchise{
		FranchiseID:  req.FranchiseID,
		IngredientID: req.IngredientID,
		Quantity:     *req.Quantity,
	})
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, stock)
}

// HandleUpdateStock godoc
// @Summary      Set the quantity of a stock entry
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "stock ID"
// @Param        request  body      request.UpdateStockRequest  true  "quantity"
// @Success      200      {object}  domain.StockFranchise
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /stocks/{id} [patch]
func (h *StockHandler) HandleUpdateStock(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateStockRequest
	if !bind(ctx, &req) {
		return
	}

	stock, err := h.svc.UpdateQuantity(ctx.Request.Context(), claims, id, *req.Quantity)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleDeleteStock godoc
// @Summary      Delete a stock entry
// @Tags         stocks
// @Param        id   path      string  true  "stock ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /stocks/{id} [delete]
func (h *StockHandler) HandleDeleteStock(ctx *gin.Context) {
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

// HandleExportStocks godoc
// @Summary      Download the stock of a franchise as a spreadsheet
// @Tags         stocks
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        franchise_id  query     string  false  "franchise (required for administrators)"
// @Success      200           {file}    file
// @Failure      400           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Router       /stocks/export [get]
func (h *StockHandler) HandleExportStocks(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	franchiseID, ok := franchiseQuery(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	franchise, err := h.svc.Export(ctx.Request.Context(), claims, franchiseID, &buf)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="stock-%s.xlsx"`, franchise.ID))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// HandleImportStocks godoc
// @Summary      Set the stock of a franchise from a spreadsheet
// @Description  The file uses the export layout. Every listed ingredient gets the given quantity.
// @Tags         stocks
// @Accept       multipart/form-data
// @Produce      json
// @Param        franchise_id  query     string  false  "franchise (required for administrators)"
// @Param        file          formData  file    true   "xlsx file"
// @Success      200           {object}  response.ImportResponse
// @Failure      400           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Router       /stocks/import [post]
func (h *StockHandler) HandleImportStocks(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	franchiseID, ok := franchiseQuery(ctx)
	if !ok {
		return
	}

	// The multipart envelope needs some room on top of the file itself.
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxImportSize+multipartOverhead)

	header, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("file is larger than %d bytes", maxImportSize)))
			return
		}
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("file is required: %w", err)))
		return
	}
	if header.Size > maxImportSize {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("file is larger than %d bytes", maxImportSize)))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("header.Open -> %w", err)))
		return
	}
	defer file.Close()

	updated, err := h.svc.Import(ctx.Request.Context(), claims, franchiseID, file)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.ImportResponse{Updated: updated})
}
