// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [NotePersister] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrPersistence is returned when the persisted collection cannot be read
	// or written (permissions, full disk, lost database connection).
	ErrPersistence = errors.New("note persistence failed")

	// ErrCorruptStore is returned by Load when the persisted collection exists
	// but cannot be decoded into valid notes: malformed JSON, undecodable
	// columns, empty or duplicated identifiers.
	ErrCorruptStore = errors.New("persisted note collection is corrupt")
)

// Low-level database operation errors. These are wrapped together with
// [ErrPersistence] by the SQL adapter when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when iterating the result set fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan note rows")
)
