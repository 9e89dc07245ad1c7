package vtu

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrTimeout = errors.New("vendor connection timed out")

// StatusCodeError поставщик ответил статусом отличным от http.StatusOK.
type StatusCodeError struct {
	Code    int
	Message string
}

func NewStatusCodeError(code int, message string) *StatusCodeError {
	return &StatusCodeError{Code: code, Message: message}
}

func (e *StatusCodeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code %d", e.Code)
	}
	return e.Message
}

type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// IsRejection сообщает, что поставщик окончательно отклонил запрос (4xx кроме 429). Таймауты, 5xx и сетевые
// ошибки не дают ответа о судьбе операции.
func IsRejection(err error) bool {
	var scErr *StatusCodeError
	if !errors.As(err, &scErr) {
		return false
	}
	return scErr.Code >= http.StatusBadRequest && scErr.Code < http.StatusInternalServerError &&
		scErr.Code != http.StatusTooManyRequests
}
