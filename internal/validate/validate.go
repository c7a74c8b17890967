package validate

// This package wraps go-playground/validator with one shared instance and the
// custom tags used by config structs.
//
// e.g. internal/config/config.go
//   type Preset struct {
//       Label    string `yaml:"label" validate:"required"`
//       Duration string `yaml:"duration" validate:"required,countdown_duration"`
//   }

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// TagDuration accepts strings that countdown.ParseDuration turns into a positive duration.
const TagDuration = "countdown_duration"

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		if err := validatorInst.RegisterValidation(TagDuration, isDuration); err != nil {
			panic(err)
		}
	})
	return validatorInst
}

func isDuration(fl validator.FieldLevel) bool {
	_, err := countdown.ParseDuration(fl.Field().String())
	return err == nil
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
