package api

import (
	"testing"

	"github.com/fsdevblog/jadanpay/internal/transport/api/testutils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("nigerian_phone", validateNigerianPhone))
	require.NoError(t, v.RegisterValidation("digits", validateDigits))
	require.NoError(t, v.RegisterValidation("max_bytes", validateMaxBytes))
	return v
}

func TestValidateNigerianPhone(t *testing.T) {
	v := newTestValidator(t)

	cases := []struct {
		phone string
		valid bool
	}{
		{phone: "08031234567", valid: true},
		{phone: "+2348031234567", valid: true},
		{phone: "2349051234567", valid: true},
		{phone: "07011234567", valid: true},
		{phone: "0803123456", valid: false},
		{phone: "06031234567", valid: false},
		{phone: "0803123456a", valid: false},
		{phone: "", valid: false},
	}
	for _, tt := range cases {
		t.Run(tt.phone, func(t *testing.T) {
			err := v.Var(tt.phone, "nigerian_phone")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateNigerianPhoneGenerated(t *testing.T) {
	v := newTestValidator(t)

	for range 20 {
		phone := testutils.NigerianPhone()
		require.NoError(t, v.Var(phone, "nigerian_phone"), phone)
		require.NoError(t, v.Var("+234"+phone[1:], "nigerian_phone"), phone)
	}
}

func TestValidateDigits(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Var("0123456789", "digits"))
	assert.Error(t, v.Var("12 34", "digits"))
	assert.Error(t, v.Var("١٢٣", "digits"))
	assert.Error(t, v.Var("", "digits"))
}

func TestValidateMaxBytes(t *testing.T) {
	v := newTestValidator(t)

	// 10 рун, 40 байт.
	str := testutils.GenerateOverBytesUnderRunes(10)
	assert.NoError(t, v.Var(str, "max=10"))
	assert.Error(t, v.Var(str, "max_bytes=10"))
	assert.NoError(t, v.Var(str, "max_bytes=40"))
}
