package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentClaimsKey = "currentClaims"

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется
// ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if !strings.HasPrefix(tokenHeader, bearer) {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// authorize проверяет токен и записывает claims в контекст. При отказе запрос прерывается и возвращается false.
func authorize(c *gin.Context, jwtTokenSecret []byte, allow func(*tokens.UserClaims) bool) bool {
	claims, err := checkAuthorization(c, jwtTokenSecret)
	if err != nil {
		if !errors.Is(err, ErrTokenNotExist) {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return false
	}
	if !allow(claims) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return false
	}
	c.Set(CurrentClaimsKey, claims)
	return true
}

// AuthRequired пропускает запросы клиентов с действующим токеном. Записывает claims в контекст
// (поле CurrentClaimsKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorize(c, jwtTokenSecret, func(claims *tokens.UserClaims) bool {
			return claims.Kind == tokens.KindUser
		}) {
			c.Next()
		}
	}
}

// BackOfficeRequired пропускает запросы сотрудников и клиентов, у которых есть права панели управления.
func BackOfficeRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorize(c, jwtTokenSecret, func(claims *tokens.UserClaims) bool {
			return claims.Kind == tokens.KindStaff || len(claims.Permissions) > 0
		}) {
			c.Next()
		}
	}
}

// RequirePermission пропускает запрос, только если у владельца токена есть право permission. Должен
// вызываться после AuthRequired или BackOfficeRequired.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil || !claims.Can(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// NonAuthRequired отклоняет запросы, в которых уже передан действующий токен.
func NonAuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := checkAuthorization(c, jwtTokenSecret); err == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Already authorized"})
			return
		}
		c.Next()
	}
}

// CurrentClaims claims токена текущего запроса или nil.
func CurrentClaims(c *gin.Context) *tokens.UserClaims {
	v, exist := c.Get(CurrentClaimsKey)
	if !exist {
		return nil
	}
	claims, _ := v.(*tokens.UserClaims)
	return claims
}
