// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagNotBlank rejects strings that are empty after trimming whitespace.
const tagNotBlank = "notblank"

// NoteValidator implements [Validator] on top of go-playground/validator
// using the `validate` struct tags of the note request models.
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator builds a [NoteValidator] with the custom rules registered.
// Violations are reported under the JSON names of the fields.
func NewNoteValidator() *NoteValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation(tagNotBlank, validateNotBlank)

	return &NoteValidator{validate: v}
}

// Validate checks value against its struct tags. When fields are given only
// those struct fields are checked.
func (v *NoteValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		return fmt.Errorf("%w: %s", ErrValidationFailed, describe(violations))
	}

	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func describe(violations validator.ValidationErrors) string {
	parts := make([]string, 0, len(violations))
	for _, fe := range violations {
		field := fe.Field()
		switch fe.Tag() {
		case tagNotBlank, "required":
			parts = append(parts, field+" must not be blank")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %q rule", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(fld.Name)
	}
	return name
}
