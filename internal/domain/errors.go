package domain

import "errors"

// Domain errors represent error conditions in the scoreship domain.
// They are wrapped with context by callers and checked with errors.Is.
var (
	// ErrNoCredentials is returned when the credential source is missing or empty.
	ErrNoCredentials = errors.New("scoreship: no credentials")

	// ErrNoAccounts is returned when no credential could be authenticated.
	ErrNoAccounts = errors.New("scoreship: no authenticated accounts")

	// ErrInitialization is returned when a session cannot load its initial
	// profile or task list. It ends that session only.
	ErrInitialization = errors.New("scoreship: session initialization failed")

	// ErrNoTargets is returned when a transfer is requested without recipients.
	ErrNoTargets = errors.New("scoreship: no transfer targets configured")

	// ErrTransferFailed is recorded when every attempt for a target failed.
	ErrTransferFailed = errors.New("scoreship: transfer failed")

	// ErrAlreadyRunning is returned when Start is called on a running supervisor.
	ErrAlreadyRunning = errors.New("scoreship: already running")

	// ErrNotRunning is returned when Stop is called on a stopped supervisor.
	ErrNotRunning = errors.New("scoreship: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("scoreship: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("scoreship: invalid configuration")
)
