package domain

import (
	"slices"
	"strings"
)

// Операторы мобильной связи.
const (
	ProviderMTN     = "MTN"
	ProviderGLO     = "GLO"
	ProviderAirtel  = "AIRTEL"
	Provider9Mobile = "9MOBILE"
)

// Поставщики коммунальных услуг и ТВ.
const (
	ProviderDSTV      = "DSTV"
	ProviderGOTV      = "GOTV"
	ProviderStarTimes = "STARTIMES"
	ProviderIKEDC     = "IKEDC"
	ProviderEKEDC     = "EKEDC"
	ProviderAEDC      = "AEDC"
	ProviderIBEDC     = "IBEDC"
	ProviderKEDCO     = "KEDCO"
)

var (
	NetworkProviders     = []string{ProviderMTN, ProviderGLO, ProviderAirtel, Provider9Mobile}
	CableProviders       = []string{ProviderDSTV, ProviderGOTV, ProviderStarTimes}
	ElectricityProviders = []string{ProviderIKEDC, ProviderEKEDC, ProviderAEDC, ProviderIBEDC, ProviderKEDCO}
)

func IsNetworkProvider(provider string) bool {
	return slices.Contains(NetworkProviders, provider)
}

// IsBillProvider проверяет, что provider принадлежит списку поставщиков для типа оплаты t.
func IsBillProvider(t TransactionType, provider string) bool {
	switch t {
	case TransactionCable:
		return slices.Contains(CableProviders, provider)
	case TransactionElectricity:
		return slices.Contains(ElectricityProviders, provider)
	default:
		return false
	}
}

var networkPrefixes = map[string][]string{
	ProviderMTN: {
		"0803", "0806", "0703", "0706", "0813", "0816", "0810", "0814", "0903", "0906", "0913", "0916",
	},
	ProviderGLO:     {"0805", "0807", "0705", "0815", "0811", "0905", "0915"},
	ProviderAirtel:  {"0802", "0808", "0708", "0812", "0701", "0902", "0901", "0904", "0907", "0912"},
	Provider9Mobile: {"0809", "0818", "0817", "0909", "0908"},
}

// DetectNetwork определяет оператора по префиксу номера. Номер принимается в локальном формате (080...) или
// международном (+234/234). Если оператор не определен, возвращается пустая строка.
func DetectNetwork(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(phone, "234") {
		phone = "0" + phone[3:]
	}
	if len(phone) < 4 { //nolint:mnd
		return ""
	}
	prefix := phone[:4]
	for _, provider := range NetworkProviders {
		if slices.Contains(networkPrefixes[provider], prefix) {
			return provider
		}
	}
	return ""
}
