package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type CommandService interface {
	List(ctx context.Context, claims domain.Claims, franchiseID string, status domain.CommandStatus) ([]domain.Command, error)
	Get(ctx context.Context, claims domain.Claims, id string) (domain.Command, error)
	Create(ctx context.Context, claims domain.Claims, input domain.CommandInput) (domain.Command, error)
	UpdateStatus(ctx context.Context, claims domain.Claims, id string, status domain.CommandStatus) (domain.Command, error)
	Delete(ctx context.Context, claims domain.Claims, id string) error
	Track(ctx context.Context, claims domain.Claims, id string) (domain.Command, <-chan domain.CommandStatusEvent, error)
}

type CommandHandler struct {
	svc     CommandService
	tracker *tracker
}

func NewCommandHandler(svc CommandService, allowedOrigins []string) *CommandHandler {
	return &CommandHandler{
		svc:     svc,
		tracker: newTracker(allowedOrigins),
	}
}

// HandleListCommands godoc
// @Summary      List supply commands
// @Description  Administrators may omit franchise_id to see every franchise
// @Tags         commands
// @Produce      json
// @Param        franchise_id  query     string  false  "franchise"
// @Param        status        query     string  false  "draft, confirmed, in_progress, delivered or canceled"
// @Success      200           {array}   domain.Command
// @Failure      400           {object}  response.Err
// @Failure      403           {object}  response.Err
// @Router       /commands [get]
func (h *CommandHandler) HandleListCommands(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	filter := request.CommandFilterRequest{
		FranchiseID: ctx.Query("franchise_id"),
		Status:      ctx.Query("status"),
	}
	if err := filter.Validate(); err != nil {
		response.Render(ctx, err)
		return
	}

	commands, err := h.svc.List(ctx.Request.Context(), claims, filter.FranchiseID, domain.CommandStatus(filter.Status))
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, commands)
}

// HandleGetCommand godoc
// @Summary      Get a command with its items
// @Tags         commands
// @Produce      json
// @Param        id   path      string  true  "command ID"
// @Success      200  {object}  domain.Command
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /commands/{id} [get]
func (h *CommandHandler) HandleGetCommand(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	command, err := h.svc.Get(ctx.Request.Context(), claims, id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, command)
}

// HandleCreateCommand godoc
// @Summary      Create a supply command
// @Description  Items without unit_price use the ingredient's current price. Nothing is stored when an item is rejected.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCommandRequest  true  "command"
// @Success      201      {object}  domain.Command
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /commands [post]
func (h *CommandHandler) HandleCreateCommand(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	var req request.CreateCommandRequest
	if !bind(ctx, &req) {
		return
	}

	command, err := h.svc.Create(ctx.Request.Context(), claims, req.Command())
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, command)
}

// HandleUpdateCommandStatus godoc
// @Summary      Move a command to another status
// @Description  Delivering a command adds its items to the franchise stock
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "command ID"
// @Param        request  body      request.UpdateCommandStatusRequest  true  "new status"
// @Success      200      {object}  domain.Command
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /commands/{id}/status [patch]
func (h *CommandHandler) HandleUpdateCommandStatus(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateCommandStatusRequest
	if !bind(ctx, &req) {
		return
	}

	command, err := h.svc.UpdateStatus(ctx.Request.Context(), claims, id, domain.CommandStatus(req.Status))
	if err != nil {
		response.Render(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, command)
}

// HandleDeleteCommand godoc
// @Summary      Delete a draft or canceled command
// @Tags         commands
// @Param        id   path      string  true  "command ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /commands/{id} [delete]
func (h *CommandHandler) HandleDeleteCommand(ctx *gin.Context) {
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

// HandleTrackCommand godoc
// @Summary      Follow the status of a command
// @Description  Upgrades to a websocket. The current status is sent first, then every change until the command is delivered or canceled.
// @Tags         commands
// @Param        id   path      string  true  "command ID"
// @Success      101  {object}  domain.CommandStatusEvent
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /commands/{id}/track [get]
func (h *CommandHandler) HandleTrackCommand(ctx *gin.Context) {
	claims, ok := claimsOf(ctx)
	if !ok {
		return
	}

	id, ok := idParam(ctx)
	if !ok {
		return
	}

	streamCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()

	command, events, err := h.svc.Track(streamCtx, claims, id)
	if err != nil {
		response.Render(ctx, err)
		return
	}

	h.tracker.serve(streamCtx, cancel, ctx, command, events)
}
