package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	purchaseRefDigits = 9
	fundingRefDigits  = 9
	manualRefDigits   = 6
	bonusRefDigits    = 5
	walletDigits      = 9
	adminRefDigits    = 4

	// referenceAttempts сколько раз операция повторяется при совпадении сгенерированного референса.
	referenceAttempts = 3
)

// randomDigits возвращает строку из n случайных цифр.
func randomDigits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + rand.IntN(10))) //nolint:gosec,mnd
	}
	return b.String()
}

// newReference формирует референс вида PREFIX-nnnn.
func newReference(prefix string, digits int) string {
	return prefix + "-" + randomDigits(digits)
}

// newAdminReference референс ручной корректировки: ADMIN-<unix ms>-nnnn.
func newAdminReference() string {
	return fmt.Sprintf("ADMIN-%d-%s", time.Now().UnixMilli(), randomDigits(adminRefDigits))
}

// newWalletNumber номер виртуального кошелька: 2 и девять случайных цифр.
func newWalletNumber() string {
	return "2" + randomDigits(walletDigits)
}

// newReferralCode первые три буквы имени в верхнем регистре и четырехзначное число.
func newReferralCode(name string) string {
	prefix := strings.ToUpper(strings.TrimSpace(name))
	if utf8.RuneCountInString(prefix) > 3 { //nolint:mnd
		prefix = string([]rune(prefix)[:3])
	}
	return fmt.Sprintf("%s%d", prefix, 1000+rand.IntN(9000)) //nolint:gosec,mnd
}
