package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/ports"
	"github.com/bft-labs/scoreship/pkg/log"
)

// AccountNamePrefix prefixes the generated account names.
const AccountNamePrefix = "Wallet-"

// Bootstrap authenticates every credential in order. Failed credentials are
// logged with a masked prefix and skipped. Accounts are numbered by
// successful logins, so the n-th working credential becomes "Wallet-n".
// It returns domain.ErrNoAccounts if nothing authenticated.
func Bootstrap(ctx context.Context, auth ports.Authenticator, credentials []string, status ports.StatusReporter, logger log.Logger) ([]*domain.Account, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if status == nil {
		status = discardStatus{}
	}

	accounts := make([]*domain.Account, 0, len(credentials))
	for _, credential := range credentials {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := auth.Authenticate(ctx, credential)
		if err != nil {
			logger.Warn("login failed",
				log.String("credential", maskCredential(credential)),
				log.Err(err),
			)
			continue
		}

		n := len(accounts) + 1
		account := domain.NewAccount(fmt.Sprintf("%s%d", AccountNamePrefix, n), n, credential, token)
		accounts = append(accounts, account)
		logger.Info("login succeeded", log.String("account", account.Name))
		status.Update(account.Name, "logged in", domain.ModeImportant)
	}

	if len(accounts) == 0 {
		return nil, domain.ErrNoAccounts
	}
	logger.Info("bootstrap complete",
		log.Int("accounts", len(accounts)),
		log.Int("credentials", len(credentials)),
	)
	return accounts, nil
}
