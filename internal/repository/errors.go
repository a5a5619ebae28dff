package repository

import "errors"

// Common repository errors
var (
	// ErrNotMember is returned when a board insert is attempted by a user
	// with no membership row for the target workspace. The check and the
	// insert share one transaction, so a concurrent revocation cannot
	// slip an unauthorized insert through.
	ErrNotMember = errors.New("user is not a member of the workspace")

	// ErrDuplicateBoard is returned when the (workspace_id, title) unique
	// constraint rejects an insert, including the case of two concurrent
	// creations racing on the same title.
	ErrDuplicateBoard = errors.New("board title already exists in this workspace")

	// ErrDuplicateWorkspace is returned when an owner already has a
	// workspace with the same name.
	ErrDuplicateWorkspace = errors.New("workspace name already exists for this owner")
)
