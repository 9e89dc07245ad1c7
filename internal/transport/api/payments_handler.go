package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentsHandler ручные пополнения и корректировки баланса из админки.
type PaymentsHandler struct {
	walletService WalletServicer
}

func NewPaymentsHandler(walletService WalletServicer) *PaymentsHandler {
	return &PaymentsHandler{walletService: walletService}
}

// Pending GET RouteGroup + AdminPaymentsRoute. Заявки на ручное пополнение, ожидающие решения.
func (h *PaymentsHandler) Pending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.walletService.PendingFundings(ctx)
	respondTransactions(c, txs, err)
}

// Approve POST RouteGroup + AdminPaymentApproveRoute.
func (h *PaymentsHandler) Approve(c *gin.Context) {
	h.decide(c, h.walletService.ApproveFunding)
}

// Decline POST RouteGroup + AdminPaymentDeclineRoute.
func (h *PaymentsHandler) Decline(c *gin.Context) {
	h.decide(c, h.walletService.DeclineFunding)
}

type AdjustBalanceParams struct {
	UserID    int64                `binding:"required,gt=0"               json:"userId"`
	Amount    decimal.Decimal      `json:"amount"`
	Direction domain.DirectionType `binding:"required,oneof=credit debit" json:"direction"`
}

// Adjust POST RouteGroup + AdminAdjustRoute. Прямое начисление или списание с баланса юзера.
func (h *PaymentsHandler) Adjust(c *gin.Context) {
	var params AdjustBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := h.walletService.AdminAdjust(ctx, params.UserID, params.Amount, params.Direction)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *PaymentsHandler) decide(
	c *gin.Context,
	fn func(ctx context.Context, txID int64) (*domain.Transaction, error),
) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := fn(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func respondTransactions(c *gin.Context, txs []domain.Transaction, err error) {
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}
