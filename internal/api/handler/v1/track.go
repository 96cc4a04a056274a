package v1

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// tracker streams command status events over websockets. A connection ends
// when the command reaches a terminal status, the client goes away or the
// server shuts down.
type tracker struct {
	upgrader websocket.Upgrader
}

func newTracker(allowedOrigins []string) *tracker {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &tracker{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := allowed[origin]; ok {
					return true
				}
				u, err := url.Parse(origin)

				return err == nil && u.Host == r.Host
			},
		},
	}
}

func (t *tracker) serve(streamCtx context.Context, cancel context.CancelFunc, ctx *gin.Context, command domain.Command, events <-chan domain.CommandStatusEvent) {
	conn, err := t.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already answered the client.
		zap.L().Debug("websocket upgrade failed", zap.String("command_id", command.ID), zap.Error(err))
		return
	}
	defer conn.Close()

	go readPump(conn, cancel)

	first := domain.CommandStatusEvent{
		CommandID:   command.ID,
		FranchiseID: command.FranchiseID,
		Status:      command.Status,
		At:          command.UpdatedAt,
	}
	if err = writeEvent(conn, first); err != nil || command.Status.IsTerminal() {
		closeNormally(conn)
		return
	}

	writePump(streamCtx, conn, command.Status, events)
}

// readPump discards client messages and cancels the stream once the client
// disconnects or stops answering pings.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket closed", zap.Error(err))
			}
			return
		}
	}
}

// writePump forwards status changes after current. An event carrying the
// status already sent is the one the initial read observed and is skipped.
func writePump(ctx context.Context, conn *websocket.Conn, current domain.CommandStatus, events <-chan domain.CommandStatusEvent) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				closeNormally(conn)
				return
			}
			if event.Status == current {
				continue
			}
			current = event.Status
			if err := writeEvent(conn, event); err != nil {
				return
			}
			if event.Status.IsTerminal() {
				closeNormally(conn)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			closeNormally(conn)
			return
		}
	}
}

func writeEvent(conn *websocket.Conn, event domain.CommandStatusEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	return conn.WriteJSON(event)
}

func closeNormally(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
