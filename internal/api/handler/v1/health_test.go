package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		redisErr   error
		wantStatus int
		wantBody   HealthResponse
	}{
		{
			name:       "all up",
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok", Services: map[string]string{"postgres": "up", "redis": "up"}},
		},
		{
			name:       "redis down",
			redisErr:   errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   HealthResponse{Status: "degraded", Services: map[string]string{"postgres": "up", "redis": "down"}},
		},
		{
			name:       "postgres down",
			dbErr:      errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   HealthResponse{Status: "degraded", Services: map[string]string{"postgres": "down", "redis": "up"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()
			ping := dbMock.ExpectPing()
			if tt.dbErr != nil {
				ping.WillReturnError(tt.dbErr)
			}

			rdb, redisMock := redismock.NewClientMock()
			if tt.redisErr != nil {
				redisMock.ExpectPing().SetErr(tt.redisErr)
			} else {
				redisMock.ExpectPing().SetVal("PONG")
			}

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/healthz", NewHealthHandler(db, rdb).HandleHealthcheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
			assert.NoError(t, dbMock.ExpectationsWereMet())
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}
