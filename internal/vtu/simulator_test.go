package vtu

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(rate float64) *Simulator {
	return NewSimulator(logrus.New(),
		WithLatency(0),
		WithFailureRate(rate),
		WithRand(rand.New(rand.NewPCG(1, 2))), //nolint:gosec
	)
}

var bilal = Credentials{Vendor: domain.VendorBilalSada, APIKey: "key"} //nolint:gochecknoglobals

func TestSimulatorSuccess(t *testing.T) {
	sim := newTestSimulator(0)
	res, err := sim.BuyAirtime(t.Context(), bilal, AirtimeRequest{
		Reference: "REF-100",
		Provider:  domain.ProviderMTN,
		Phone:     "08031234567",
		Amount:    decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.True(t, strings.HasPrefix(res.Reference, "BILALSADA-"), res.Reference)

	// повторный запрос по нашему идентификатору видит тот же исход.
	requeried, err := sim.Requery(t.Context(), bilal, "REF-100")
	require.NoError(t, err)
	assert.Equal(t, *res, *requeried)
}

func TestSimulatorRejections(t *testing.T) {
	sim := newTestSimulator(0)

	cases := []struct {
		name   string
		req    AirtimeRequest
		code   int
		reason string
	}{
		{
			name:   "amount over limit",
			req:    AirtimeRequest{Phone: "08031234567", Amount: decimal.NewFromInt(50001)},
			code:   http.StatusUnprocessableEntity,
			reason: "Amount exceeds daily limit per transaction.",
		},
		{
			name:   "barred number",
			req:    AirtimeRequest{Phone: "08031234000", Amount: decimal.NewFromInt(100)},
			code:   http.StatusBadRequest,
			reason: "Destination number barred.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sim.BuyAirtime(t.Context(), bilal, tc.req)
			var scErr *StatusCodeError
			require.ErrorAs(t, err, &scErr)
			assert.Equal(t, tc.code, scErr.Code)
			assert.Contains(t, err.Error(), tc.reason)
			assert.True(t, IsRejection(err))
		})
	}

	// остальные поставщики лимиты BILALSADA не применяют.
	res, err := sim.BuyAirtime(t.Context(), Credentials{Vendor: domain.VendorMaskawa, APIKey: "k"},
		AirtimeRequest{Phone: "08031234000", Amount: decimal.NewFromInt(60000)})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
}

func TestSimulatorMissingKey(t *testing.T) {
	sim := newTestSimulator(0)
	_, err := sim.BuyData(t.Context(), Credentials{Vendor: domain.VendorAlrahuz}, DataRequest{PlanID: "1"})
	var scErr *StatusCodeError
	require.ErrorAs(t, err, &scErr)
	assert.Equal(t, http.StatusUnauthorized, scErr.Code)
	assert.Contains(t, err.Error(), "ALRAHUZ")

	balance, err := sim.Balance(t.Context(), Credentials{Vendor: domain.VendorAlrahuz})
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = sim.Balance(t.Context(), bilal)
	require.NoError(t, err)
	assert.Equal(t, "54000.5", balance.String())
}

func TestSimulatorTimeoutIsResolvedByRequery(t *testing.T) {
	sim := newTestSimulator(1)
	ref := "REF-" + gofakeit.DigitN(9)
	_, err := sim.PayBill(t.Context(), bilal, BillRequest{
		Reference: ref,
		Type:      domain.TransactionCable,
		Provider:  domain.ProviderDSTV,
		Number:    "1234567890",
		Amount:    decimal.NewFromInt(2950),
	})
	require.ErrorIs(t, err, ErrTimeout)
	assert.False(t, IsRejection(err))

	res, err := sim.Requery(t.Context(), bilal, ref)
	require.NoError(t, err)
	assert.Contains(t, []Status{StatusSuccess, StatusFailed}, res.Status)

	unknown, err := sim.Requery(t.Context(), bilal, "REF-unknown")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, unknown.Status)
}

func TestSimulatorRespectsContext(t *testing.T) {
	sim := NewSimulator(logrus.New(), WithLatency(time.Minute), WithFailureRate(0))
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	_, err := sim.BuyAirtime(ctx, bilal, AirtimeRequest{Phone: "08031234567", Amount: decimal.NewFromInt(100)})
	require.ErrorIs(t, err, ErrTimeout)
}

func TestSimulatorValidateCustomer(t *testing.T) {
	sim := newTestSimulator(0)
	customer, err := sim.ValidateCustomer(t.Context(), bilal,
		ValidateRequest{Provider: domain.ProviderIKEDC, Number: "45012345678"})
	require.NoError(t, err)
	assert.Equal(t, "MOCKED CUSTOMER", customer.Name)

	_, err = sim.ValidateCustomer(t.Context(), bilal, ValidateRequest{Provider: domain.ProviderIKEDC, Number: "123"})
	assert.True(t, IsRejection(err))
}

func TestNetworkID(t *testing.T) {
	assert.Equal(t, "9mobile", NetworkID(domain.Provider9Mobile, domain.VendorBilalSada))
	assert.Equal(t, "mtn", NetworkID("mtn", domain.VendorBilalSada))
	assert.Equal(t, "4", NetworkID(domain.Provider9Mobile, domain.VendorSimHost))
	assert.Equal(t, "3", NetworkID("airtel", domain.VendorMaskawa))
	assert.Equal(t, "smile", NetworkID("SMILE", domain.VendorMaskawa))
}
