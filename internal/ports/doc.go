// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [RemoteService]: every network operation a session performs
//   - [Authenticator]: exchanges a credential for a session token
//   - [Notifier]: fire-and-forget transfer receipts
//   - [StatusReporter]: the shared status surface
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters under internal/adapters implement them.
package ports

//go:generate mockgen -source=remote.go -destination=../mock/remote_mock.go -package=mock
