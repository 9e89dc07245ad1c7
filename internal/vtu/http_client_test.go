package vtu

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	creds  Credentials
}

func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}

func (s *HTTPClientTestSuite) SetupTest() {
	s.creds = Credentials{Vendor: domain.VendorMaskawa, APIKey: "secret-key"}
}

func (s *HTTPClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *HTTPClientTestSuite) TestBuyAirtime() {
	var got map[string]any
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteTopup, r.URL.Path)
		s.Equal(http.MethodPost, r.Method)
		s.Equal("Token secret-key", r.Header.Get("Authorization"))
		s.NotEmpty(r.Header.Get("X-Request-ID"))
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":"successful","message":"ok","ref":"MASKAWA-77"}`))
	}))

	client := NewHTTPClient(WithBaseURL(s.server.URL))
	res, err := client.BuyAirtime(s.T().Context(), s.creds, AirtimeRequest{
		Reference: "REF-1",
		Provider:  domain.ProviderGLO,
		Phone:     "08051234567",
		Amount:    decimal.NewFromInt(200),
	})
	s.Require().NoError(err)
	s.Equal(StatusSuccess, res.Status)
	s.Equal("MASKAWA-77", res.Reference)

	s.Equal("2", got["network"])
	s.Equal("08051234567", got["mobile_number"])
	s.Equal("08051234567", got["phone"])
	s.Equal("REF-1", got["request_id"])
	s.Equal("VTU", got["airtime_type"])
	s.Equal(true, got["Ported_number"])
}

func (s *HTTPClientTestSuite) TestErrors() {
	cases := []struct {
		name      string
		status    int
		body      string
		header    map[string]string
		rejection bool
		check     func(err error)
	}{
		{
			name:      "rejected with message",
			status:    http.StatusBadRequest,
			body:      `{"message":"Destination number barred."}`,
			rejection: true,
			check: func(err error) {
				s.Equal("Destination number barred.", err.Error())
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `oops`,
			check: func(err error) {
				var scErr *StatusCodeError
				s.Require().ErrorAs(err, &scErr)
				s.Equal(http.StatusInternalServerError, scErr.Code)
			},
		},
		{
			name:   "too many requests",
			status: http.StatusTooManyRequests,
			header: map[string]string{"Retry-After": "5"},
			check: func(err error) {
				var tmErr *TooManyRequestError
				s.Require().ErrorAs(err, &tmErr)
				s.Equal(5*time.Second, tmErr.RetryAfter)
			},
		},
		{
			name:   "too many requests with invalid header",
			status: http.StatusTooManyRequests,
			header: map[string]string{"Retry-After": "soon"},
			check: func(err error) {
				var tmErr *TooManyRequestError
				s.Require().ErrorAs(err, &tmErr)
				s.Equal(time.Minute, tmErr.RetryAfter)
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tc.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewHTTPClient(WithBaseURL(server.URL))
			_, err := client.BuyData(s.T().Context(), s.creds, DataRequest{Reference: "REF-2", PlanID: "1001"})
			s.Require().Error(err)
			s.Equal(tc.rejection, IsRejection(err))
			tc.check(err)
		})
	}
}

func (s *HTTPClientTestSuite) TestMissingAPIKey() {
	client := NewHTTPClient(WithBaseURL("http://127.0.0.1:0"))
	_, err := client.PayBill(s.T().Context(), Credentials{Vendor: domain.VendorSimHost}, BillRequest{})

	var scErr *StatusCodeError
	s.Require().ErrorAs(err, &scErr)
	s.Equal(http.StatusUnauthorized, scErr.Code)
	s.Contains(err.Error(), "API Key missing for SIMHOST")
	s.True(IsRejection(err))

	balance, err := client.Balance(s.T().Context(), Credentials{Vendor: domain.VendorSimHost})
	s.Require().NoError(err)
	s.True(balance.IsZero())
}

func (s *HTTPClientTestSuite) TestRequeryNormalizesStatus() {
	statuses := map[string]Status{
		"delivered":  StatusSuccess,
		"reversed":   StatusFailed,
		"processing": StatusPending,
	}
	for raw, want := range statuses {
		s.Run(raw, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.Equal(RouteRequery, r.URL.Path)
				_, _ = w.Write([]byte(`{"status":"` + raw + `"}`))
			}))
			defer server.Close()

			res, err := NewHTTPClient(WithBaseURL(server.URL)).Requery(s.T().Context(), s.creds, "REF-3")
			s.Require().NoError(err)
			s.Equal(want, res.Status)
		})
	}
}

func (s *HTTPClientTestSuite) TestValidateCustomer() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"customer_name":"ADA LOVELACE"}`))
	}))
	customer, err := NewHTTPClient(WithBaseURL(s.server.URL)).ValidateCustomer(s.T().Context(), s.creds,
		ValidateRequest{Provider: domain.ProviderDSTV, Number: "1234567890"})
	s.Require().NoError(err)
	s.Equal("ADA LOVELACE", customer.Name)
	s.Equal("1234567890", customer.Number)
	s.Equal(domain.ProviderDSTV, customer.Provider)
}
