// Package sim implements the remote service ports with an in-memory backend.
//
// A single Backend holds the state of every simulated account. It issues
// HS256 session tokens from Authenticate and hands out per-session Remote
// clients that resolve the account from the token on every call. Failures
// are injected at a configurable rate from a seeded source so runs are
// reproducible.
package sim

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/transfer"
)

const (
	DefaultDuration   = 180
	DefaultTokenTTL   = 48 * time.Hour
	DefaultStartLevel = 5
	DefaultStartScore = 2500
	DefaultBatchSize  = 5

	issuer = "scoreship-sim"

	playReward       = 20
	experiencePerEnd = 40
	levelExperience  = 1000
	heartbeatSeconds = 30
)

var (
	// ErrInjected is returned when the backend decides to fail a call.
	ErrInjected = errors.New("sim: injected failure")

	// ErrUnauthorized is returned for a missing, invalid or expired token.
	ErrUnauthorized = errors.New("sim: unauthorized")

	// ErrInsufficientScore is returned when a transfer exceeds the balance.
	ErrInsufficientScore = errors.New("sim: insufficient score")

	// ErrUnknownContent is returned for ids the backend never issued.
	ErrUnknownContent = errors.New("sim: unknown content")

	// ErrNotPlaying is returned when heartbeat or end has no open playback.
	ErrNotPlaying = errors.New("sim: no active playback")
)

// Config configures a Backend.
type Config struct {
	// FailureRate is the probability in [0, 1] that any call fails.
	FailureRate float64
	// Duration is the content duration in seconds.
	Duration int
	// Seed drives failure injection. Zero picks a random seed.
	Seed int64

	StartLevel int
	StartScore int64
	BatchSize  int
	TokenTTL   time.Duration
	Now        func() time.Time
}

type account struct {
	id         string
	level      int
	score      int64
	experience int64
	favorites  int
	comments   int
	listened   int64
	playing    string
	following  map[domain.TransferTarget]struct{}
}

// Transfer is one committed transfer recorded by the backend.
type Transfer struct {
	From   string
	To     domain.TransferTarget
	Amount int64
	Fee    int64
}

// Backend is the shared in-memory state behind every simulated session.
type Backend struct {
	cfg Config
	key []byte

	mu        sync.Mutex
	rng       *mrand.Rand
	accounts  map[string]*account
	content   map[string]domain.Content
	transfers []Transfer
	issued    int
}

// New creates a backend, filling unset fields with defaults.
func New(cfg Config) *Backend {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.StartLevel <= 0 {
		cfg.StartLevel = DefaultStartLevel
	}
	if cfg.StartScore <= 0 {
		cfg.StartScore = DefaultStartScore
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = mrand.Uint64()
	}

	key := make([]byte, 32)
	_, _ = rand.Read(key)

	return &Backend{
		cfg:      cfg,
		key:      key,
		rng:      mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		accounts: make(map[string]*account),
		content:  make(map[string]domain.Content),
	}
}

// Authenticate implements ports.Authenticator. Each distinct credential maps
// to a stable account id.
func (b *Backend) Authenticate(ctx context.Context, credential string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", fmt.Errorf("authenticate: %w", ErrUnauthorized)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failLocked() {
		return "", fmt.Errorf("authenticate: %w", ErrInjected)
	}

	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(credential)).String()
	if _, ok := b.accounts[id]; !ok {
		b.accounts[id] = &account{
			id:        id,
			level:     b.cfg.StartLevel,
			score:     b.cfg.StartScore,
			following: make(map[domain.TransferTarget]struct{}),
		}
	}

	now := b.cfg.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(b.cfg.TokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(b.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Remote returns a fresh per-session client with no token set.
func (b *Backend) Remote() *Remote {
	return &Remote{backend: b}
}

// Transfers returns a copy of the committed transfer ledger.
func (b *Backend) Transfers() []Transfer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Transfer(nil), b.transfers...)
}

func (b *Backend) failLocked() bool {
	return b.cfg.FailureRate > 0 && b.rng.Float64() < b.cfg.FailureRate
}

func (b *Backend) accountLocked(token string) (*account, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return b.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(b.cfg.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	acc, ok := b.accounts[claims.Subject]
	if !ok {
		return nil, ErrUnauthorized
	}
	return acc, nil
}

// call resolves the account and rolls for an injected failure.
func (b *Backend) call(ctx context.Context, token, op string, fn func(*account) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	acc, err := b.accountLocked(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if b.failLocked() {
		return fmt.Errorf("%s: %w", op, ErrInjected)
	}
	if err := fn(acc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (b *Backend) newContentLocked() domain.Content {
	b.issued++
	c := domain.Content{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf("Track %d", b.issued),
		Author:   fmt.Sprintf("Artist %d", (b.issued-1)%7+1),
		Duration: b.cfg.Duration,
	}
	b.content[c.ID] = c
	return c
}

func (b *Backend) transferLocked(acc *account, target domain.TransferTarget, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount %d", amount)
	}
	fee := transfer.Fee(amount)
	if amount > acc.score-fee {
		return ErrInsufficientScore
	}
	acc.score -= amount + fee
	b.transfers = append(b.transfers, Transfer{From: acc.id, To: target, Amount: amount, Fee: fee})
	return nil
}

func (acc *account) gainExperience(xp int64) {
	acc.experience += xp
	for acc.experience >= levelExperience {
		acc.experience -= levelExperience
		acc.level++
	}
}

func (acc *account) profile() domain.Profile {
	return domain.Profile{
		Level:               acc.level,
		Score:               acc.score,
		Experience:          acc.experience,
		NextLevelExperience: levelExperience,
	}
}

func (acc *account) tasks(category int) []domain.Task {
	if category != 1 {
		return nil
	}
	return []domain.Task{
		{
			Key:             "play_music",
			Name:            "Listen",
			Unit:            "minutes",
			CompleteNum:     30,
			CompletedRounds: int(acc.listened / 60),
			RewardScore:     50,
		},
		{
			Key:             "like_music",
			Name:            "Like",
			CompleteNum:     10,
			CompletedRounds: min(acc.favorites, 10),
			RewardScore:     20,
		},
		{
			Key:             "comment_music",
			Name:            "Comment",
			CompleteNum:     5,
			CompletedRounds: min(acc.comments, 5),
			RewardScore:     20,
		},
	}
}
