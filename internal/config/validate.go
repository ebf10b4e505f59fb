package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("fen", func(fl validator.FieldLevel) bool {
		_, err := engine.NewBoardFromFEN(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every field against its limits. The returned error wraps
// errors.ErrInvalidConfig and names each failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	var details strings.Builder
	for _, e := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", e.Namespace()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", e.Namespace(), e.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", e.Namespace(), e.Param()))
		case "fen":
			details.WriteString(fmt.Sprintf("%s is not a valid FEN position", e.Namespace()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", e.Namespace(), e.Tag()))
		}
	}
	return errors.Wrap(errors.ErrInvalidConfig, details.String())
}
