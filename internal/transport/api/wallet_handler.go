package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/export"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService   WalletServicer
	userService     UserServicer
	settingsService SettingsServicer
}

func NewWalletHandler(walletService WalletServicer, userService UserServicer, settingsService SettingsServicer) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		userService:     userService,
		settingsService: settingsService,
	}
}

type FundWalletParams struct {
	Amount  decimal.Decimal       `json:"amount"`
	Gateway domain.PaymentGateway `binding:"required,oneof=PAYSTACK FLUTTERWAVE MONNIFY" json:"gateway"`
}

// Fund POST RouteGroup + WalletFundRoute. Пополнение через платежный шлюз.
func (h *WalletHandler) Fund(c *gin.Context) {
	var params FundWalletParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := h.walletService.FundWallet(ctx, getUserIDFromContext(c), params.Amount, params.Gateway)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

type ManualFundingParams struct {
	Amount   decimal.Decimal `json:"amount"`
	ProofURL string          `binding:"required,max=2048" json:"proofUrl"`
}

// Manual POST RouteGroup + WalletManualRoute. Заявка на ручное пополнение с подтверждением оплаты.
func (h *WalletHandler) Manual(c *gin.Context) {
	var params ManualFundingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := h.walletService.SubmitManualFunding(ctx, getUserIDFromContext(c), params.Amount, params.ProofURL)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, tx)
}

// Redeem POST RouteGroup + BonusRedeemRoute. Перевод бонусов на основной баланс.
func (h *WalletHandler) Redeem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.walletService.RedeemBonus(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Transactions GET RouteGroup + TransactionsRoute. История операций юзера, начиная с новых.
func (h *WalletHandler) Transactions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.walletService.History(ctx, getUserIDFromContext(c))
	respondTransactions(c, txs, err)
}

// Receipt GET RouteGroup + ReceiptRoute. PDF квитанция по транзакции юзера.
func (h *WalletHandler) Receipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := h.walletService.Transaction(ctx, userID, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	settings, err := h.settingsService.Public(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err = export.Receipt(&buf, export.ReceiptArgs{
		AppName:     settings.AppName,
		Transaction: *tx,
		User:        user,
	}); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, tx.Reference))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
