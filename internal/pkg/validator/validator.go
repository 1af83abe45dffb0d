package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/railway-booking/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры; ошибки полей конвертируются в AppError
// с деталями по каждому полю
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// ErrBadID - ошибка для нечислового path-параметра
func ErrBadID(param string) error {
	return errors.ErrInvalidRequest.WithField(param, "must be a positive integer")
}
