package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var statusTexts = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusPaymentRequired:     "payment required",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not found",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable entity",
	http.StatusBadGateway:          "bad gateway",
	http.StatusServiceUnavailable:  "service unavailable",
	http.StatusGatewayTimeout:      "gateway timeout",
}

func statusErrorText(status int) string {
	if text, ok := statusTexts[status]; ok {
		return text
	}
	return "internal server error"
}

// Errors отдает клиенту первую ошибку запроса. Текст публичных ошибок виден клиенту, для остальных
// отдается описание статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// тело ответа уже записано обработчиком.
		if c.Writer.Size() > 0 {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		msg := statusErrorText(status)
		if first := c.Errors[0]; first.IsType(gin.ErrorTypePublic) {
			msg = first.Error()
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(status, msg)
		} else {
			c.JSON(status, gin.H{"error": msg})
		}
		c.Abort()
	}
}
