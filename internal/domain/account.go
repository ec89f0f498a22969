package domain

// Account is one independently operated credential/session.
// It is created at session start, mutated only by its own session and reset
// at every day-window rollover.
type Account struct {
	// Name is the display name, e.g. "Wallet-3". The embedded number orders
	// the status board.
	Name string

	// Ordinal is the 1-based position assigned at bootstrap.
	Ordinal int

	// Credential is the secret material used to obtain session tokens.
	Credential string

	// Token is the current session token.
	Token string

	Level               int
	Score               int64
	Experience          int64
	NextLevelExperience int64

	// ListeningSeconds is the simulated consumption time in the current day.
	ListeningSeconds int64

	// DailyCount is the number of content items started in the current day.
	DailyCount int

	processed map[string]struct{}
}

// NewAccount creates an account with an empty processed set.
func NewAccount(name string, ordinal int, credential, token string) *Account {
	return &Account{
		Name:       name,
		Ordinal:    ordinal,
		Credential: credential,
		Token:      token,
		processed:  make(map[string]struct{}),
	}
}

// Processed reports whether the content id was already handled today.
func (a *Account) Processed(id string) bool {
	_, ok := a.processed[id]
	return ok
}

// MarkProcessed records id in the processed set. It returns false if the id
// was already present.
func (a *Account) MarkProcessed(id string) bool {
	if a.processed == nil {
		a.processed = make(map[string]struct{})
	}
	if _, ok := a.processed[id]; ok {
		return false
	}
	a.processed[id] = struct{}{}
	return true
}

// ProcessedCount returns the size of the processed set.
func (a *Account) ProcessedCount() int {
	return len(a.processed)
}

// ApplyProfile copies the remote progress fields into the account.
func (a *Account) ApplyProfile(p Profile) {
	a.Level = p.Level
	a.Score = p.Score
	a.Experience = p.Experience
	a.NextLevelExperience = p.NextLevelExperience
}

// ResetDay clears per-day counters and the processed set. Identity and token
// are kept.
func (a *Account) ResetDay() {
	a.DailyCount = 0
	a.ListeningSeconds = 0
	a.processed = make(map[string]struct{})
}

// Profile is the remote view of an account's progress.
type Profile struct {
	Level               int
	Score               int64
	Experience          int64
	NextLevelExperience int64
}

// Task is one entry of the remote daily task list.
type Task struct {
	Key             string
	Name            string
	Unit            string
	CompleteNum     int
	CompletedRounds int
	MaxComplete     int
	ItemCount       string
	RewardScore     int64
}

// Content is a consumable item returned by recommendations or detail lookups.
// Zero values mean "unknown" and are filled with defaults by the session.
type Content struct {
	ID       string
	Title    string
	Author   string
	Duration int
}
