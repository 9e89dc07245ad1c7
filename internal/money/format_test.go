package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNaira(t *testing.T) {
	cases := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "₦0"},
		{name: "thousands", amount: decimal.NewFromInt(150000), want: "₦150,000"},
		{name: "fraction", amount: decimal.RequireFromString("54000.5"), want: "₦54,000.50"},
		{name: "negative", amount: decimal.NewFromInt(-2500), want: "-₦2,500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Naira(tc.amount))
		})
	}
}

func TestCeilToHundred(t *testing.T) {
	assert.True(t, decimal.NewFromInt(300).Equal(CeilToHundred(decimal.NewFromInt(250))))
	assert.True(t, decimal.NewFromInt(200).Equal(CeilToHundred(decimal.NewFromInt(200))))
	assert.True(t, decimal.NewFromInt(100).Equal(CeilToHundred(decimal.RequireFromString("0.5"))))
}
