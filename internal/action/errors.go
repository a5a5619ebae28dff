package action

import "errors"

// Typed failures crossing the action-layer boundary. Handlers branch on
// these with errors.Is/As and render the uniform result envelope; nothing
// in this package panics across the boundary.
var (
	// ErrUserNotFound is a lookup miss on an untrusted username.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotWorkspaceMember is an authorization failure: the caller is
	// authenticated but holds no membership for the target workspace.
	ErrNotWorkspaceMember = errors.New("unauthorized to create board in this workspace")

	// ErrInvalidCredentials covers every test-login failure mode so the
	// response does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries a human-readable message for malformed input.
// It is returned before any database mutation is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
