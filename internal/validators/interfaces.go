// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note requests before they reach the note store.
//
// Rules live in `validate` struct tags on the request models. A blank title,
// a blank tag or a blank search query is rejected; everything else is left
// to the store.
package validators

import "context"

// Validator checks value against its rules. When fields are named, only
// those fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
