// Package vtu клиенты VTU поставщиков: пополнение эфира, пакеты данных, оплата ТВ и электричества.
package vtu

import (
	"context"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks

// Маршруты API поставщика.
const (
	RouteTopup    = "/topup"
	RouteData     = "/data"
	RouteBill     = "/bill"
	RouteValidate = "/validate"
	RouteRequery  = "/requery"
	RouteBalance  = "/balance"
)

// BaseURLs адреса API поддерживаемых поставщиков.
var BaseURLs = map[domain.APIVendor]string{ //nolint:gochecknoglobals
	domain.VendorBilalSada:    "https://app.bilalsadasub.com/api/v1",
	domain.VendorMaskawa:      "https://api.maskawasub.com/api/v1",
	domain.VendorAlrahuz:      "https://alrahuzdata.com.ng/api/v1",
	domain.VendorAbbaPhantami: "https://abbaphantami.com/api/v1",
	domain.VendorSimHost:      "https://simhostng.com/api/v1",
}

type Client interface {
	BuyAirtime(ctx context.Context, creds Credentials, req AirtimeRequest) (*Result, error)
	BuyData(ctx context.Context, creds Credentials, req DataRequest) (*Result, error)
	PayBill(ctx context.Context, creds Credentials, req BillRequest) (*Result, error)
	ValidateCustomer(ctx context.Context, creds Credentials, req ValidateRequest) (*Customer, error)
	Requery(ctx context.Context, creds Credentials, reference string) (*Result, error)
	Balance(ctx context.Context, creds Credentials) (decimal.Decimal, error)
}

// Credentials активный поставщик и его ключ из настроек.
type Credentials struct {
	Vendor domain.APIVendor
	APIKey string
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

// Result ответ поставщика на операцию. Reference идентификатор операции у поставщика.
type Result struct {
	Status    Status `json:"status"`
	Message   string `json:"message"`
	Reference string `json:"ref"`
}

// AirtimeRequest Reference наш идентификатор транзакции, по нему выполняется Requery.
type AirtimeRequest struct {
	Reference string
	Provider  string
	Phone     string
	Amount    decimal.Decimal
}

type DataRequest struct {
	Reference string
	Provider  string
	Phone     string
	PlanID    string
}

type BillRequest struct {
	Reference string
	Type      domain.TransactionType
	Provider  string
	Number    string
	Amount    decimal.Decimal
	PlanID    string
}

type ValidateRequest struct {
	Provider string
	Number   string
}

type Customer struct {
	Name     string `json:"customer_name"`
	Number   string `json:"number"`
	Provider string `json:"provider"`
}

var numericNetworkIDs = map[string]string{ //nolint:gochecknoglobals
	domain.ProviderMTN:     "1",
	domain.ProviderGLO:     "2",
	domain.ProviderAirtel:  "3",
	domain.Provider9Mobile: "4",
}

// NetworkID идентификатор сети в формате поставщика. BILALSADA принимает названия в нижнем регистре,
// остальные числовые идентификаторы. Неизвестный оператор передается как есть в нижнем регистре.
func NetworkID(provider string, v domain.APIVendor) string {
	p := strings.ToUpper(provider)
	if v == domain.VendorBilalSada {
		return strings.ToLower(p)
	}
	if id, ok := numericNetworkIDs[p]; ok {
		return id
	}
	return strings.ToLower(p)
}

// payload тело запроса к поставщику. Поля mobile_number и phone дублируются, разные скрипты ожидают разные имена.
type payload struct {
	RequestID    string           `json:"request_id"`
	Network      string           `json:"network,omitempty"`
	MobileNumber string           `json:"mobile_number,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Plan         string           `json:"plan,omitempty"`
	PortedNumber bool             `json:"Ported_number,omitempty"`
	AirtimeType  string           `json:"airtime_type,omitempty"`
	Service      string           `json:"service,omitempty"`
	Number       string           `json:"number,omitempty"`
}

func airtimePayload(v domain.APIVendor, req AirtimeRequest) payload {
	amount := req.Amount
	return payload{
		RequestID:    req.Reference,
		Network:      NetworkID(req.Provider, v),
		MobileNumber: req.Phone,
		Phone:        req.Phone,
		Amount:       &amount,
		PortedNumber: true,
		AirtimeType:  "VTU",
	}
}

func dataPayload(v domain.APIVendor, req DataRequest) payload {
	return payload{
		RequestID:    req.Reference,
		Network:      NetworkID(req.Provider, v),
		MobileNumber: req.Phone,
		Phone:        req.Phone,
		Plan:         req.PlanID,
		PortedNumber: true,
	}
}

func billPayload(req BillRequest) payload {
	amount := req.Amount
	return payload{
		RequestID: req.Reference,
		Service:   strings.ToLower(req.Provider),
		Number:    req.Number,
		Amount:    &amount,
		Plan:      req.PlanID,
	}
}
