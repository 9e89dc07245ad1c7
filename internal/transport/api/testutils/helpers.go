package testutils

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

var mobilePrefixes = []string{"0703", "0803", "0806", "0810", "0813", "0903", "0905", "0915"}

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// NigerianPhone случайный номер мобильного в локальном формате.
func NigerianPhone() string {
	return gofakeit.RandomString(mobilePrefixes) + gofakeit.DigitN(7) //nolint:mnd
}
