package api

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var nigerianPhoneRe = regexp.MustCompile(`^(\+?234|0)[789][01]\d{8}$`)

// validateNigerianPhone номер мобильного в формате 080XXXXXXXX или +23480XXXXXXXX.
func validateNigerianPhone(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return nigerianPhoneRe.MatchString(str)
}

// validateDigits строка только из цифр.
func validateDigits(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok || str == "" {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	maxBytes, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

var registerOnce sync.Once

func registerValidators() error {
	var err error
	registerOnce.Do(func() {
		v, _ := binding.Validator.Engine().(*validator.Validate)
		validations := map[string]validator.Func{
			"nigerian_phone": validateNigerianPhone,
			"digits":         validateDigits,
			"max_bytes":      validateMaxBytes,
		}
		for tag, fn := range validations {
			if regErr := v.RegisterValidation(tag, fn); regErr != nil {
				err = fmt.Errorf("validator registration: %s", regErr.Error())
				return
			}
		}
	})
	return err
}
