package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports database reachability and process uptime.
type HealthHandler struct {
	ping    func(ctx context.Context) error
	started time.Time
	logger  *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		ping: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		},
		started: time.Now(),
		logger:  params.Logger,
	}
}

// HealthStatus is the healthcheck payload.
type HealthStatus struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	Uptime   float64 `json:"uptimeSeconds"`
	UptimeHR string  `json:"uptime"`
}

// HealthCheck answers 200 when the database responds and 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	uptime := time.Since(h.started)
	status := HealthStatus{
		Status:   "ok",
		Database: "up",
		Uptime:   uptime.Seconds(),
		UptimeHR: util.FormatDuration(uptime),
	}
	code := http.StatusOK
	if err := h.ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Database ping failed", slog.Any("error", err))
		status.Status, status.Database = "degraded", "down"
		code = http.StatusServiceUnavailable
	}

	return response.Success(c, code, status, "")
}
