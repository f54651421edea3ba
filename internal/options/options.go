// Package options applies defaults and validation to the per-call option
// structs used across the library: `default:` tags are filled first, then
// `validate:` tags are checked, and any failure is translated into the
// library's typed errors.
package options

import (
	stderrors "errors"
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"

	"finchart/errors"
)

var validate = validator.New()

// Apply fills defaults into the options struct pointed to by opts and
// validates it. The first validation failure is returned as a typed error:
// an unknown enumerated value is UnsupportedOption, anything else is
// InvalidInput.
func Apply(opts any) error {
	if err := defaults.Set(opts); err != nil {
		return errors.New(errors.KindInvalidInput, "apply option defaults", err)
	}
	if err := validate.Struct(opts); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.New(errors.KindInvalidInput, "validate options", err)
	}

	fe := verrs[0]
	if fe.Tag() == "oneof" {
		return errors.NewUnsupportedOption(fe.Field(), fmt.Sprintf("%v", fe.Value()))
	}
	return errors.NewInvalidInput(
		fmt.Sprintf("option %s=%v violates %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
}
