// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) UUID strings for note
// identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh UUID in its canonical 36-character form.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// the random source is exhausted; a time-ordered id is still unique
		return uuid.Must(uuid.NewV7()).String()
	}

	return id.String()
}
