package ports

import (
	"context"

	"github.com/bft-labs/scoreship/internal/domain"
)

// RemoteService is the per-account view of the remote platform.
// Every call may fail; a returned error means no effect occurred.
type RemoteService interface {
	// SetToken replaces the session token used by subsequent calls.
	SetToken(token string)

	Profile(ctx context.Context) (domain.Profile, error)
	DailyTasks(ctx context.Context, category int) ([]domain.Task, error)
	RecommendedContent(ctx context.Context) ([]domain.Content, error)
	ContentDetail(ctx context.Context, id string) (domain.Content, error)

	RecordHistory(ctx context.Context, id string) error
	MarkFavorite(ctx context.Context, id string) error
	PostComment(ctx context.Context, id, text string) error

	StartPlayback(ctx context.Context, id string) error
	Heartbeat(ctx context.Context) error
	EndPlayback(ctx context.Context, id string) error

	FollowAccount(ctx context.Context, target domain.TransferTarget) error
	TransferScore(ctx context.Context, target domain.TransferTarget, amount int64) error
}

// Authenticator obtains a session token for a credential. Implementations may
// run a multi-step challenge/sign/verify exchange.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (string, error)
}

// Notifier delivers transfer receipts. Delivery failures are reported to the
// caller, which logs them and moves on.
type Notifier interface {
	Notify(ctx context.Context, receipt domain.TransferReceipt) error
}

// StatusReporter receives status lines keyed by account name.
type StatusReporter interface {
	Update(accountID, message string, mode domain.StatusMode)
}
