// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the value is not a struct or a
	// pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidationFailed wraps every rule violation found in a value.
	ErrValidationFailed = errors.New("validation failed")
)
