package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/scoreship/internal/app"
	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/ports"
	"github.com/bft-labs/scoreship/internal/transfer"
)

var (
	_ ports.RemoteService = (*Remote)(nil)
	_ ports.Authenticator = (*Backend)(nil)
)

func login(t *testing.T, b *Backend, credential string) *Remote {
	t.Helper()
	token, err := b.Authenticate(context.Background(), credential)
	require.NoError(t, err)
	r := b.Remote()
	r.SetToken(token)
	return r
}

func TestAuthenticate_StableAccount(t *testing.T) {
	b := New(Config{Seed: 1})
	ctx := context.Background()

	r1 := login(t, b, "cred-a")
	require.NoError(t, r1.TransferScore(ctx, "0xabc", 100))

	r2 := login(t, b, "cred-a")
	p, err := r2.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, DefaultStartScore-110, p.Score, "same credential resolves to the same account")

	other := login(t, b, "cred-b")
	p, err = other.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, DefaultStartScore, p.Score)
}

func TestAuthenticate_EmptyCredential(t *testing.T) {
	_, err := New(Config{}).Authenticate(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemote_RejectsMissingAndExpiredToken(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := New(Config{TokenTTL: time.Hour, Now: func() time.Time { return now }})
	ctx := context.Background()

	_, err := b.Remote().Profile(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	r := login(t, b, "cred")
	now = now.Add(2 * time.Hour)
	_, err = r.Profile(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	r.SetToken("not-a-jwt")
	_, err = r.Profile(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemote_PlaybackAccruesScore(t *testing.T) {
	b := New(Config{Duration: 60})
	r := login(t, b, "cred")
	ctx := context.Background()

	items, err := r.RecommendedContent(ctx)
	require.NoError(t, err)
	require.Len(t, items, DefaultBatchSize)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, 60, items[0].Duration)

	id := items[0].ID
	detail, err := r.ContentDetail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, items[0], detail)

	assert.ErrorIs(t, r.Heartbeat(ctx), ErrNotPlaying)
	require.NoError(t, r.RecordHistory(ctx, id))
	require.NoError(t, r.MarkFavorite(ctx, id))
	require.NoError(t, r.PostComment(ctx, id, "good one"))
	require.NoError(t, r.StartPlayback(ctx, id))
	require.NoError(t, r.Heartbeat(ctx))
	require.NoError(t, r.Heartbeat(ctx))
	require.NoError(t, r.EndPlayback(ctx, id))

	p, err := r.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, DefaultStartScore+playReward, p.Score)
	assert.EqualValues(t, experiencePerEnd, p.Experience)

	tasks, err := r.DailyTasks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, 1, tasks[0].CompletedRounds, "two heartbeats are one listened minute")
	assert.Equal(t, 1, tasks[1].CompletedRounds)
	assert.Equal(t, 1, tasks[2].CompletedRounds)

	none, err := r.DailyTasks(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRemote_UnknownContent(t *testing.T) {
	r := login(t, New(Config{}), "cred")
	ctx := context.Background()

	_, err := r.ContentDetail(ctx, "missing")
	assert.ErrorIs(t, err, ErrUnknownContent)
	assert.ErrorIs(t, r.StartPlayback(ctx, "missing"), ErrUnknownContent)
}

func TestRemote_TransferChargesFee(t *testing.T) {
	b := New(Config{StartScore: 1000})
	r := login(t, b, "cred")
	ctx := context.Background()

	require.NoError(t, r.FollowAccount(ctx, "0xabc"))
	require.NoError(t, r.TransferScore(ctx, "0xabc", 909))

	p, err := r.Profile(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.Score)

	assert.ErrorIs(t, r.TransferScore(ctx, "0xabc", 2), ErrInsufficientScore)

	ledger := b.Transfers()
	require.Len(t, ledger, 1)
	assert.EqualValues(t, 909, ledger[0].Amount)
	assert.EqualValues(t, 90, ledger[0].Fee)
}

func TestBackend_FailureInjection(t *testing.T) {
	always := New(Config{FailureRate: 1, Seed: 7})
	_, err := always.Authenticate(context.Background(), "cred")
	assert.ErrorIs(t, err, ErrInjected)

	count := func(seed int64) int {
		b := New(Config{FailureRate: 0.5, Seed: seed})
		failures := 0
		for i := 0; i < 200; i++ {
			if _, err := b.Authenticate(context.Background(), "cred"); err != nil {
				failures++
			}
		}
		return failures
	}
	first := count(42)
	assert.Equal(t, first, count(42), "same seed reproduces the failure pattern")
	assert.Greater(t, first, 50)
	assert.Less(t, first, 150)
}

func TestRemote_ContextCancelled(t *testing.T) {
	r := login(t, New(Config{}), "cred")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Profile(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemote_ConcurrentSessions(t *testing.T) {
	b := New(Config{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		r := login(t, b, "cred-"+string(rune('a'+i)))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				items, err := r.RecommendedContent(ctx)
				if err != nil {
					continue
				}
				_ = r.StartPlayback(ctx, items[0].ID)
				_ = r.Heartbeat(ctx)
				_ = r.EndPlayback(ctx, items[0].ID)
				_ = r.TransferScore(ctx, "0xabc", 1)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, b.Transfers(), 160)
}

func TestSession_EndToEndWithSim(t *testing.T) {
	b := New(Config{Duration: 1, Seed: 3})
	accounts, err := app.Bootstrap(context.Background(), b, []string{"cred-1"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := app.DefaultSessionConfig()
	cfg.DailyLimit = 1
	cfg.TickInterval = time.Millisecond
	cfg.CycleInterval = time.Millisecond
	cfg.WaitWindow = time.Hour
	cfg.WaitStatusInterval = time.Millisecond
	cfg.Targets = []domain.TransferTarget{"0xabc"}

	remote := b.Remote()
	s := app.NewSession(cfg, accounts[0], app.SessionDeps{
		Remote: remote,
		Auth:   b,
		Engine: transfer.NewEngine(transfer.Config{}),
	})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return len(b.Transfers()) == 1 }, 4*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	tr := b.Transfers()[0]
	assert.Equal(t, domain.TransferTarget("0xabc"), tr.To)
	assert.EqualValues(t, transfer.MaxSendable(DefaultStartScore+playReward), tr.Amount)
}
