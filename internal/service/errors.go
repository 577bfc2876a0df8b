// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidNote is returned when a request breaks a note rule, such as
	// a blank title or an empty tag.
	ErrInvalidNote = errors.New("invalid note data provided")

	// ErrNoteNotFound is returned when no note has the requested id.
	ErrNoteNotFound = errors.New("note not found")

	// ErrIndexOutOfRange is returned when a position is outside [0, count).
	ErrIndexOutOfRange = errors.New("note index out of range")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
