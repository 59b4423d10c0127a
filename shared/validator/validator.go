package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strings"

	"guesthouse/shared/constant"
	"guesthouse/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerMimetypeValidation checks the Content-Type the client declared for an uploaded part.
func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := strings.TrimSpace(strings.SplitN(file.Header.Get(constant.RequestHeaderContentType), ";", 2)[0]) //nolint:mnd

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	if err := validate.RegisterValidation("mimetypes", registerMimetypeValidation); err != nil {
		panic(err)
	}
}

// fieldName reports fields by their json or form name so messages match the request payload.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0] //nolint:mnd
		if name == "-" {
			continue
		}

		if name != "" {
			return name
		}
	}

	return field.Name
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Unknown JSON fields are rejected.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

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
