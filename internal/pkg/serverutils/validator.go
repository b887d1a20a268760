package serverutils

import (
	"fmt"
	"strings"
	"sync"

	"officehub-be/internal/entity"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("item_type", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseItemType(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("auto_delete_period", func(fl validator.FieldLevel) bool {
			return entity.AutoDeletePeriod(fl.Field().String()).Valid()
		})
	})
	return validate
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func ValidateRequest(req interface{}) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "item_type":
		return fmt.Sprintf("must be one of %v", entity.ItemTypes())
	case "auto_delete_period":
		return fmt.Sprintf("must be one of %v", entity.AutoDeletePeriods())
	case "min":
		return "must have at least " + fe.Param() + " element(s)"
	case "max":
		return "must have at most " + fe.Param() + " element(s)"
	default:
		return "failed on " + fe.Tag()
	}
}
