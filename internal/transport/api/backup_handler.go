package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxBackupBody ограничение размера загружаемой резервной копии.
const maxBackupBody = 64 << 20

type BackupHandler struct {
	backupService BackupServicer
}

func NewBackupHandler(backupService BackupServicer) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Dump GET RouteGroup + AdminBackupRoute. Полная резервная копия в виде JSON файла.
func (h *BackupHandler) Dump(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	backup, err := h.backupService.Dump(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	raw, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	filename := fmt.Sprintf("jadanpay-backup-%s.json", backup.Timestamp.UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json", raw)
}

// Restore POST RouteGroup + AdminBackupRoute. Полностью заменяет данные содержимым копии.
func (h *BackupHandler) Restore(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupBody))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err = h.backupService.Restore(ctx, raw); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}
