package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/fsdevblog/jadanpay/internal/service/tokens"
	"github.com/fsdevblog/jadanpay/internal/transport/api/middlewares"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidJSON = errors.New("invalid json")
)

// errorStatus соответствие ошибок сервисного слоя статусам ответа. Клиенту отдается текст sentinel ошибки.
var errorStatus = []struct { //nolint:gochecknoglobals
	err    error
	status int
}{
	{domain.ErrRecordNotFound, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrDuplicateKey, http.StatusConflict},
	{domain.ErrSettlementConflict, http.StatusConflict},
	{domain.ErrEmailTaken, http.StatusConflict},
	{domain.ErrPhoneTaken, http.StatusConflict},
	{domain.ErrPasswordMissMatch, http.StatusUnauthorized},
	{domain.ErrInvalidOTP, http.StatusUnauthorized},
	{domain.ErrAccountBlocked, http.StatusForbidden},
	{domain.ErrStaffInactive, http.StatusForbidden},
	{domain.ErrOwnerConflict, http.StatusForbidden},
	{domain.ErrNotEnoughBalance, http.StatusPaymentRequired},
	{domain.ErrNotEnoughForRoundUp, http.StatusPaymentRequired},
	{domain.ErrMaintenance, http.StatusServiceUnavailable},
	{domain.ErrProviderUnavailable, http.StatusServiceUnavailable},
	{vtu.ErrTimeout, http.StatusGatewayTimeout},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrNoBonus, http.StatusUnprocessableEntity},
	{domain.ErrGatewayDisabled, http.StatusUnprocessableEntity},
	{domain.ErrProofRequired, http.StatusUnprocessableEntity},
	{domain.ErrTransactionNotPending, http.StatusUnprocessableEntity},
	{domain.ErrTransactionNotFundable, http.StatusUnprocessableEntity},
	{domain.ErrUnknownProvider, http.StatusUnprocessableEntity},
	{domain.ErrBundleUnavailable, http.StatusUnprocessableEntity},
	{domain.ErrBundleMisconfigured, http.StatusUnprocessableEntity},
	{domain.ErrTicketClosed, http.StatusUnprocessableEntity},
	{domain.ErrUnknownPermission, http.StatusUnprocessableEntity},
	{domain.ErrInvalidBackup, http.StatusUnprocessableEntity},
	{domain.ErrCorruptBackup, http.StatusUnprocessableEntity},
	{domain.ErrTemplateVariableMissing, http.StatusUnprocessableEntity},
	{service.ErrInvalidSettings, http.StatusUnprocessableEntity},
	{service.ErrEmptyTicket, http.StatusUnprocessableEntity},
}

// abortWithServiceError прерывает запрос со статусом, соответствующим ошибке сервиса. Неизвестные ошибки
// отдаются как 500 без подробностей.
func abortWithServiceError(c *gin.Context, err error) {
	var minErr *domain.MinimumRedeemError
	if errors.As(err, &minErr) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": minErr.Error()})
		return
	}

	var rejected *domain.VendorRejectedError
	if errors.As(err, &rejected) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"error":       "Provider failed to process transaction. Your wallet has been refunded.",
			"reason":      rejected.Reason,
			"transaction": rejected.Transaction,
		})
		return
	}

	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(e.status, gin.H{"error": e.err.Error()})
			return
		}
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

// abortWithBindError ошибки валидации отдаются со статусом 422, ошибки разбора тела со статусом 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make(map[string]string, len(valErrs))
		for _, fe := range valErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// getUserIDFromContext ID владельца токена. Claims устанавливаются в middlewares.AuthRequired.
// Если claims в контексте нет, вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	claims := middlewares.CurrentClaims(c)
	if claims == nil {
		return 0
	}
	return claims.ID
}

func getClaimsFromContext(c *gin.Context) *tokens.UserClaims {
	return middlewares.CurrentClaims(c)
}

// paramID разбирает числовой параметр пути name. При ошибке запрос прерывается со статусом 400.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errInvalidID).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}
