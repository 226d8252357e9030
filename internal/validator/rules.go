package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	code4Pattern = regexp.MustCompile(`^\d{4}$`)
	telPattern   = regexp.MustCompile(`^\+?\d{1,16}$`)
	emailPattern = regexp.MustCompile(`^.+@.+\..+$`)
)

// registerCustomRules регистрирует кастомные правила проекта
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'tristate': фильтр удобства - "", "0" (нет ограничения), "1" (да), "2" (нет)
	mustRegister("tristate", validateTristate)

	// 'code4': код подтверждения из 4 цифр
	mustRegister("code4", validateCode4)

	// 'tel': телефон или email-адрес, на который отправляется код
	mustRegister("tel", validateTarget)
}

func validateTristate(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "0", "1", "2":
		return true
	default:
		return false
	}
}

func validateCode4(fl validator.FieldLevel) bool {
	return code4Pattern.MatchString(fl.Field().String())
}

func validateTarget(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return telPattern.MatchString(value) || emailPattern.MatchString(value)
}
