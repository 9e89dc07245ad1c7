package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/jadanpay/internal/export"
	"github.com/gin-gonic/gin"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportsHandler struct {
	reportService   ReportServicer
	purchaseService PurchaseServicer
}

func NewReportsHandler(reportService ReportServicer, purchaseService PurchaseServicer) *ReportsHandler {
	return &ReportsHandler{
		reportService:   reportService,
		purchaseService: purchaseService,
	}
}

// Stats GET RouteGroup + AdminStatsRoute. Сводка для дашборда.
func (h *ReportsHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.reportService.Stats(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Ledger GET RouteGroup + AdminLedgerRoute. Все транзакции, начиная с новых.
func (h *ReportsHandler) Ledger(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.reportService.Ledger(ctx)
	respondTransactions(c, txs, err)
}

type ExportParams struct {
	Format string `binding:"omitempty,oneof=csv xlsx" form:"format"`
}

// Export GET RouteGroup + AdminExportRoute. Выгрузка журнала транзакций, ?format=csv|xlsx.
func (h *ReportsHandler) Export(c *gin.Context) {
	var params ExportParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if params.Format == "" {
		params.Format = formatCSV
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.reportService.Ledger(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	var (
		buf  bytes.Buffer
		mime string
	)
	switch params.Format {
	case formatXLSX:
		err = export.LedgerXLSX(&buf, txs)
		mime = mimeXLSX
	default:
		err = export.LedgerCSV(&buf, txs)
		mime = "text/csv"
	}
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	filename := fmt.Sprintf("transactions-%s.%s", time.Now().UTC().Format(time.DateOnly), params.Format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, mime, buf.Bytes())
}

// VendorBalance GET RouteGroup + AdminVendorBalanceRoute. Баланс счета у активного поставщика.
func (h *ReportsHandler) VendorBalance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.purchaseService.VendorBalance(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
