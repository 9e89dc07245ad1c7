package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	userService UserServicer
}

func NewAccountHandler(userService UserServicer) *AccountHandler {
	return &AccountHandler{userService: userService}
}

// Me GET RouteGroup + MeRoute. Профиль текущего юзера.
func (h *AccountHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Get(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateProfileParams struct {
	Name      string `binding:"omitempty,min=2,max=100"  json:"name"`
	Phone     string `binding:"omitempty,nigerian_phone" json:"phone"`
	AvatarURL string `binding:"omitempty,url,max=1024"   json:"avatarUrl"`
}

// UpdateMe PUT RouteGroup + MeRoute.
func (h *AccountHandler) UpdateMe(c *gin.Context) {
	var params UpdateProfileParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.UpdateProfile(ctx, getUserIDFromContext(c), service.UpdateProfileArgs{
		Name:      params.Name,
		Phone:     params.Phone,
		AvatarURL: params.AvatarURL,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type BalanceResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	Savings      decimal.Decimal `json:"savings"`
	BonusBalance decimal.Decimal `json:"bonusBalance"`
	WalletNumber string          `json:"walletNumber"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *AccountHandler) Balance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Get(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{
		Balance:      user.Balance,
		Savings:      user.Savings,
		BonusBalance: user.BonusBalance,
		WalletNumber: user.WalletNumber,
	})
}
