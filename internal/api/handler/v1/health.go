package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const healthTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

type HealthHandler struct {
	db  *sql.DB
	rdb redis.Cmdable
}

func NewHealthHandler(db *sql.DB, rdb redis.Cmdable) *HealthHandler {
	return &HealthHandler{
		db:  db,
		rdb: rdb,
	}
}

// HandleHealthcheck godoc
// @Summary      Check the database and Redis
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /healthz [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
	defer cancel()

	var postgresErr, redisErr error
	var g errgroup.Group
	g.Go(func() error {
		postgresErr = h.db.PingContext(checkCtx)
		return nil
	})
	g.Go(func() error {
		redisErr = h.rdb.Ping(checkCtx).Err()
		return nil
	})
	_ = g.Wait()

	resp := HealthResponse{
		Status: "ok",
		Services: map[string]string{
			"postgres": serviceState(postgresErr),
			"redis":    serviceState(redisErr),
		},
	}
	status := http.StatusOK
	if postgresErr != nil || redisErr != nil {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
		zap.L().Warn("health check failed", zap.NamedError("postgres", postgresErr), zap.NamedError("redis", redisErr))
	}

	ctx.JSON(status, resp)
}

func serviceState(err error) string {
	if err != nil {
		return "down"
	}

	return "up"
}
