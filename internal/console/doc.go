// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console implements the interactive, line-based front-end of the
// note store: a numbered menu read from an [io.Reader] and rendered with
// lipgloss to an [io.Writer].
//
// Notes are addressed by their 1-based position in the current listing.
// Multi-line content is entered line by line and ends with a line holding
// only END. When updating, a line holding only KEEP (or no lines at all)
// keeps the current content.
package console
