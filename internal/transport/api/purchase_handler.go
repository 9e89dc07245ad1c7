package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	purchaseService PurchaseServicer
}

func NewPurchaseHandler(purchaseService PurchaseServicer) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

type AirtimeParams struct {
	Provider string          `binding:"required,oneof=MTN GLO AIRTEL 9MOBILE" json:"provider"`
	Amount   decimal.Decimal `json:"amount"`
	Phone    string          `binding:"required,nigerian_phone"               json:"phone"`
	RoundUp  bool            `json:"roundUp"`
}

// Airtime POST RouteGroup + AirtimeRoute.
func (h *PurchaseHandler) Airtime(c *gin.Context) {
	var params AirtimeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, PurchaseTimeout)
	defer cancel()

	tx, err := h.purchaseService.BuyAirtime(ctx, service.AirtimeArgs{
		UserID:   getUserIDFromContext(c),
		Provider: params.Provider,
		Amount:   params.Amount,
		Phone:    params.Phone,
		RoundUp:  params.RoundUp,
	})
	respondPurchase(c, tx, err)
}

type DataParams struct {
	BundleID int64  `binding:"required,gt=0"           json:"bundleId"`
	Phone    string `binding:"required,nigerian_phone" json:"phone"`
	RoundUp  bool   `json:"roundUp"`
}

// Data POST RouteGroup + DataRoute.
func (h *PurchaseHandler) Data(c *gin.Context) {
	var params DataParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, PurchaseTimeout)
	defer cancel()

	tx, err := h.purchaseService.BuyData(ctx, service.DataArgs{
		UserID:   getUserIDFromContext(c),
		BundleID: params.BundleID,
		Phone:    params.Phone,
		RoundUp:  params.RoundUp,
	})
	respondPurchase(c, tx, err)
}

type BillParams struct {
	Type         domain.TransactionType `binding:"required,oneof=CABLE ELECTRICITY" json:"type"`
	Provider     string                 `binding:"required"                         json:"provider"`
	Number       string                 `binding:"required,digits,max=20"           json:"number"`
	Amount       decimal.Decimal        `json:"amount"`
	BundleID     int64                  `binding:"omitempty,gt=0"                   json:"bundleId"`
	CustomerName string                 `binding:"omitempty,max=255"                json:"customerName"`
}

// Bills POST RouteGroup + BillsRoute. Оплата ТВ или электричества.
func (h *PurchaseHandler) Bills(c *gin.Context) {
	var params BillParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, PurchaseTimeout)
	defer cancel()

	tx, err := h.purchaseService.PayBill(ctx, service.BillArgs{
		UserID:       getUserIDFromContext(c),
		Type:         params.Type,
		Provider:     strings.ToUpper(params.Provider),
		Number:       params.Number,
		Amount:       params.Amount,
		BundleID:     params.BundleID,
		CustomerName: params.CustomerName,
	})
	respondPurchase(c, tx, err)
}

type ValidateCustomerParams struct {
	Provider string `binding:"required"               form:"provider"`
	Number   string `binding:"required,digits,max=20" form:"number"`
}

// ValidateCustomer GET RouteGroup + BillsValidateRoute. Проверка номера счетчика или смарт-карты.
func (h *PurchaseHandler) ValidateCustomer(c *gin.Context) {
	var params ValidateCustomerParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, PurchaseTimeout)
	defer cancel()

	customer, err := h.purchaseService.ValidateCustomer(ctx, strings.ToUpper(params.Provider), params.Number)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Network GET RouteGroup + NetworkRoute. Определение оператора по номеру телефона.
func (h *PurchaseHandler) Network(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("phone is required")).SetType(gin.ErrorTypePublic)
		return
	}
	c.JSON(http.StatusOK, gin.H{"phone": phone, "network": domain.DetectNetwork(phone)})
}

// respondPurchase ответ на покупку. Если поставщик еще не дал окончательного ответа, запись остается
// PENDING и отдается со статусом 202.
func respondPurchase(c *gin.Context, tx *domain.Transaction, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrPurchasePending) && tx != nil {
			c.JSON(http.StatusAccepted, gin.H{"message": domain.ErrPurchasePending.Error(), "transaction": tx})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}
