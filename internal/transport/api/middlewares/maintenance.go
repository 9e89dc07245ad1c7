package middlewares

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/gin-gonic/gin"
)

type SettingsReader interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// Maintenance отвечает 503, пока в настройках включен режим обслуживания.
func Maintenance(settings SettingsReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := settings.Get(c)
		if err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}
		if s.MaintenanceMode {
			_ = c.AbortWithError(http.StatusServiceUnavailable, domain.ErrMaintenance).SetType(gin.ErrorTypePublic)
			return
		}
		c.Next()
	}
}
