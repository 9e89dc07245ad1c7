package vtu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// HTTPClient является реализацией интерфейса Client для HTTP API поставщиков.
type HTTPClient struct {
	baseURLs   map[domain.APIVendor]string
	baseURL    string
	httpClient *http.Client
}

type HTTPClientOption func(*HTTPClient)

// WithBaseURL отправляет запросы всех поставщиков на url.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.baseURL = url
	}
}

func WithHTTPClient(client *http.Client) HTTPClientOption {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURLs:   make(map[domain.APIVendor]string, len(BaseURLs)),
		httpClient: &http.Client{Timeout: 30 * time.Second}, //nolint:mnd
	}
	for v, url := range BaseURLs {
		c.baseURLs[v] = url
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) BuyAirtime(ctx context.Context, creds Credentials, req AirtimeRequest) (*Result, error) {
	var res Result
	if err := c.post(ctx, creds, RouteTopup, airtimePayload(creds.Vendor, req), &res); err != nil {
		return nil, err
	}
	return normalize(&res), nil
}

func (c *HTTPClient) BuyData(ctx context.Context, creds Credentials, req DataRequest) (*Result, error) {
	var res Result
	if err := c.post(ctx, creds, RouteData, dataPayload(creds.Vendor, req), &res); err != nil {
		return nil, err
	}
	return normalize(&res), nil
}

func (c *HTTPClient) PayBill(ctx context.Context, creds Credentials, req BillRequest) (*Result, error) {
	var res Result
	if err := c.post(ctx, creds, RouteBill, billPayload(req), &res); err != nil {
		return nil, err
	}
	return normalize(&res), nil
}

func (c *HTTPClient) ValidateCustomer(ctx context.Context, creds Credentials, req ValidateRequest) (*Customer, error) {
	var customer Customer
	p := payload{Service: strings.ToLower(req.Provider), Number: req.Number}
	if err := c.post(ctx, creds, RouteValidate, p, &customer); err != nil {
		return nil, err
	}
	if customer.Number == "" {
		customer.Number = req.Number
	}
	if customer.Provider == "" {
		customer.Provider = req.Provider
	}
	return &customer, nil
}

func (c *HTTPClient) Requery(ctx context.Context, creds Credentials, reference string) (*Result, error) {
	var res Result
	if err := c.post(ctx, creds, RouteRequery, payload{RequestID: reference}, &res); err != nil {
		return nil, err
	}
	return normalize(&res), nil
}

func (c *HTTPClient) Balance(ctx context.Context, creds Credentials) (decimal.Decimal, error) {
	if creds.APIKey == "" {
		return decimal.Zero, nil
	}
	var res struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := c.post(ctx, creds, RouteBalance, payload{}, &res); err != nil {
		return decimal.Zero, err
	}
	return res.Balance, nil
}

// post отправляет JSON запрос поставщику и разбирает ответ в out.
// При ответе сервера со статусом отличным от http.StatusOK, возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c *HTTPClient) post(ctx context.Context, creds Credentials, endpoint string, p payload, out any) (err error) {
	if creds.APIKey == "" {
		return NewStatusCodeError(http.StatusUnauthorized, fmt.Sprintf(
			"Configuration Error: API Key missing for %s. Please check Admin Settings.", creds.Vendor))
	}
	baseURL := c.baseURL
	if baseURL == "" {
		baseURL = c.baseURLs[creds.Vendor]
	}
	if baseURL == "" {
		return fmt.Errorf("unknown vendor %s", creds.Vendor)
	}

	body, marshalErr := json.Marshal(p)
	if marshalErr != nil {
		return fmt.Errorf("marshal payload: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+endpoint, bytes.NewReader(body))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+creds.APIKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		if errors.Is(doErr, context.DeadlineExceeded) || errors.Is(doErr, context.Canceled) {
			return fmt.Errorf("%w: %s", ErrTimeout, doErr.Error())
		}
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(respBody, &errBody)
		msg := errBody.Message
		if msg == "" {
			msg = errBody.Error
		}
		return NewStatusCodeError(resp.StatusCode, msg)
	}

	if jsonErr := json.Unmarshal(respBody, out); jsonErr != nil {
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return nil
}

func parseRetryAfter(value string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(value)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}

// normalize приводит статусы разных поставщиков к Status.
func normalize(res *Result) *Result {
	switch strings.ToLower(string(res.Status)) {
	case "success", "successful", "completed", "delivered":
		res.Status = StatusSuccess
	case "failed", "fail", "error", "reversed", "refunded":
		res.Status = StatusFailed
	default:
		res.Status = StatusPending
	}
	return res
}
