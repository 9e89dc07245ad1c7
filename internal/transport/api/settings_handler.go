package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxSettingsBody ограничение размера тела при обновлении настроек.
const maxSettingsBody = 1 << 20

type SettingsHandler struct {
	settingsService SettingsServicer
}

func NewSettingsHandler(settingsService SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Public GET RouteGroup + SettingsPublicRoute. Настройки без секретов, доступны без авторизации.
func (h *SettingsHandler) Public(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	settings, err := h.settingsService.Public(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Show GET RouteGroup + AdminSettingsRoute. Полные настройки, включая ключи интеграций.
func (h *SettingsHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	settings, err := h.settingsService.Get(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update PUT RouteGroup + AdminSettingsRoute. Тело частичный JSON, отсутствующие поля не меняются.
func (h *SettingsHandler) Update(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSettingsBody))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}
	if !json.Valid(body) {
		_ = c.AbortWithError(http.StatusBadRequest, errInvalidJSON).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	settings, err := h.settingsService.Update(ctx, json.RawMessage(body))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
