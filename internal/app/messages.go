// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-note-keeper HTTP handlers and their clients.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of HTTP response envelopes. Keeping them in one place
// keeps the wording identical between the API and the remote console client.
package app

const (
	// MsgNotesRetrieved accompanies a full listing of the collection.
	MsgNotesRetrieved = "Notes retrieved successfully"

	// MsgNoteRetrieved accompanies a single note looked up by id.
	MsgNoteRetrieved = "Note retrieved successfully"

	MsgNoteCreated = "Note created successfully"
	MsgNoteUpdated = "Note updated successfully"
	MsgNoteDeleted = "Note deleted successfully"

	// MsgSearchResults accompanies the notes matching a search query, which
	// may be none.
	MsgSearchResults = "Search results"

	MsgStatsRetrieved = "Stats retrieved"

	// MsgServerIsRunning is the liveness message of /health.
	MsgServerIsRunning = "Server is running"

	// MsgNoteNotFound replaces the error text of every 404 caused by a
	// missing note.
	MsgNoteNotFound = "Note not found"

	// MsgResourceNotFound is returned for paths and methods the API does
	// not serve.
	MsgResourceNotFound = "Resource not found"
)

// Prefixes of failure messages; the error text follows after ": ".
const (
	MsgFailedToListNotes    = "Failed to list notes"
	MsgFailedToGetNote      = "Failed to get note"
	MsgFailedToCreateNote   = "Failed to create note"
	MsgFailedToUpdateNote   = "Failed to update note"
	MsgFailedToDeleteNote   = "Failed to delete note"
	MsgFailedToSearchNotes  = "Failed to search notes"
	MsgFailedToRenderNote   = "Failed to render note"
	MsgFailedToComputeStats = "Failed to compute stats"
)
