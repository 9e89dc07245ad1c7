package vtu

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLatency     = 1500 * time.Millisecond
	DefaultFailureRate = 0.05

	bilalAmountLimit = 50000
)

var simulatedBalance = decimal.RequireFromString("54000.50") //nolint:gochecknoglobals

// Simulator имитация поставщика без сетевых вызовов. Держит в памяти исходы операций, чтобы отвечать на Requery.
type Simulator struct {
	latency     time.Duration
	failureRate float64
	l           *logrus.Entry

	mu      sync.Mutex
	rnd     *rand.Rand
	results map[string]Result
}

type SimulatorOption func(*Simulator)

func WithLatency(d time.Duration) SimulatorOption {
	return func(s *Simulator) {
		s.latency = d
	}
}

// WithFailureRate доля запросов, завершающихся таймаутом, от 0 до 1.
func WithFailureRate(rate float64) SimulatorOption {
	return func(s *Simulator) {
		s.failureRate = rate
	}
}

func WithRand(r *rand.Rand) SimulatorOption {
	return func(s *Simulator) {
		s.rnd = r
	}
}

func NewSimulator(l *logrus.Logger, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		latency:     DefaultLatency,
		failureRate: DefaultFailureRate,
		l:           l.WithField("component", "vendor").WithField("module", "simulator"),
		rnd:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec
		results:     make(map[string]Result),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) BuyAirtime(ctx context.Context, creds Credentials, req AirtimeRequest) (*Result, error) {
	return s.do(ctx, creds, RouteTopup, airtimePayload(creds.Vendor, req))
}

func (s *Simulator) BuyData(ctx context.Context, creds Credentials, req DataRequest) (*Result, error) {
	return s.do(ctx, creds, RouteData, dataPayload(creds.Vendor, req))
}

func (s *Simulator) PayBill(ctx context.Context, creds Credentials, req BillRequest) (*Result, error) {
	return s.do(ctx, creds, RouteBill, billPayload(req))
}

// ValidateCustomer проверяет номер смарт-карты или счетчика. Номер короче 10 цифр отклоняется.
func (s *Simulator) ValidateCustomer(ctx context.Context, creds Credentials, req ValidateRequest) (*Customer, error) {
	if err := s.prepare(ctx, creds, RouteValidate); err != nil {
		return nil, err
	}
	if len(req.Number) < 10 { //nolint:mnd
		return nil, NewStatusCodeError(http.StatusBadRequest, "API Error: Invalid customer number.")
	}
	return &Customer{Name: "MOCKED CUSTOMER", Number: req.Number, Provider: req.Provider}, nil
}

// Requery возвращает исход операции по нашему идентификатору. Неизвестная операция считается неуспешной.
func (s *Simulator) Requery(ctx context.Context, creds Credentials, reference string) (*Result, error) {
	if err := s.prepare(ctx, creds, RouteRequery); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[reference]
	if !ok {
		return &Result{Status: StatusFailed, Message: "Transaction not found."}, nil
	}
	return &res, nil
}

// Balance баланс на счету у поставщика. Без ключа API баланс нулевой.
func (s *Simulator) Balance(_ context.Context, creds Credentials) (decimal.Decimal, error) {
	if creds.APIKey == "" {
		return decimal.Zero, nil
	}
	return simulatedBalance, nil
}

func (s *Simulator) do(ctx context.Context, creds Credentials, endpoint string, p payload) (*Result, error) {
	if err := s.prepare(ctx, creds, endpoint); err != nil {
		return nil, err
	}

	if s.float() < s.failureRate {
		// поставщик мог успеть выполнить операцию, узнать это можно только через Requery.
		outcome := Result{Status: StatusFailed, Message: "Transaction was not delivered."}
		if s.float() < 0.5 { //nolint:mnd
			outcome = s.success(creds.Vendor)
		}
		s.remember(p.RequestID, outcome)
		return nil, ErrTimeout
	}

	if creds.Vendor == domain.VendorBilalSada {
		if p.Amount != nil && p.Amount.GreaterThan(decimal.NewFromInt(bilalAmountLimit)) {
			return nil, NewStatusCodeError(http.StatusUnprocessableEntity,
				"API Error: Amount exceeds daily limit per transaction.")
		}
		if strings.HasSuffix(p.Phone, "000") {
			return nil, NewStatusCodeError(http.StatusBadRequest, "API Error: Destination number barred.")
		}
	}

	res := s.success(creds.Vendor)
	s.remember(p.RequestID, res)
	return &res, nil
}

// prepare проверяет ключ и выдерживает задержку сети.
func (s *Simulator) prepare(ctx context.Context, creds Credentials, endpoint string) error {
	if creds.APIKey == "" {
		return NewStatusCodeError(http.StatusUnauthorized, fmt.Sprintf(
			"Configuration Error: API Key missing for %s. Please check Admin Settings.", creds.Vendor))
	}
	s.l.WithField("vendor", creds.Vendor).Debugf("POST %s%s", BaseURLs[creds.Vendor], endpoint)

	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(jitterDuration(s.latency, latencySpread))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %s", ErrTimeout, ctx.Err().Error())
	case <-timer.C:
		return nil
	}
}

func (s *Simulator) success(v domain.APIVendor) Result {
	s.mu.Lock()
	n := s.rnd.IntN(10000000) //nolint:mnd
	s.mu.Unlock()
	return Result{
		Status:    StatusSuccess,
		Message:   "Transaction successful",
		Reference: fmt.Sprintf("%s-%d", v, n),
	}
}

func (s *Simulator) remember(reference string, res Result) {
	if reference == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[reference] = res
}

func (s *Simulator) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
