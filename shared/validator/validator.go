package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"stayledger/config"
	"stayledger/shared/constant"
	"stayledger/shared/failure"
	"stayledger/shared/phone"

	val "github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate *val.Validate

// jsonName reports fields by their wire name so messages read "check_in is required".
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == constant.Empty {
		return field.Name
	}

	return name
}

// registerPhoneValidation accepts numbers libphonenumber can read in the configured region.
func registerPhoneValidation(region string) val.Func {
	return func(field val.FieldLevel) bool {
		raw := field.Field().String()
		if raw == constant.Empty {
			return true
		}

		_, err := phone.Normalize(raw, region)

		return err == nil
	}
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation(cfg.Booking.PhoneRegion))
	if err != nil {
		panic(err)
	}
}

// Validate decodes at most 1 MiB of JSON from r into data and runs the struct tags.
// Decode and rule failures both come back as 400 failures.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
