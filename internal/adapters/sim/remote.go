package sim

import (
	"context"
	"sync"

	"github.com/bft-labs/scoreship/internal/domain"
)

// Remote is one session's view of the Backend. It implements
// ports.RemoteService.
type Remote struct {
	backend *Backend

	mu    sync.RWMutex
	token string
}

func (r *Remote) SetToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}

func (r *Remote) currentToken() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *Remote) do(ctx context.Context, op string, fn func(*account) error) error {
	return r.backend.call(ctx, r.currentToken(), op, fn)
}

func (r *Remote) Profile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	err := r.do(ctx, "profile", func(acc *account) error {
		p = acc.profile()
		return nil
	})
	return p, err
}

func (r *Remote) DailyTasks(ctx context.Context, category int) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.do(ctx, "daily tasks", func(acc *account) error {
		tasks = acc.tasks(category)
		return nil
	})
	return tasks, err
}

func (r *Remote) RecommendedContent(ctx context.Context) ([]domain.Content, error) {
	var items []domain.Content
	err := r.do(ctx, "recommended content", func(*account) error {
		for i := 0; i < r.backend.cfg.BatchSize; i++ {
			items = append(items, r.backend.newContentLocked())
		}
		return nil
	})
	return items, err
}

func (r *Remote) ContentDetail(ctx context.Context, id string) (domain.Content, error) {
	var c domain.Content
	err := r.do(ctx, "content detail", func(*account) error {
		found, ok := r.backend.content[id]
		if !ok {
			return ErrUnknownContent
		}
		c = found
		return nil
	})
	return c, err
}

func (r *Remote) RecordHistory(ctx context.Context, id string) error {
	return r.do(ctx, "record history", r.requireContent(id, nil))
}

func (r *Remote) MarkFavorite(ctx context.Context, id string) error {
	return r.do(ctx, "mark favorite", r.requireContent(id, func(acc *account) {
		acc.favorites++
	}))
}

func (r *Remote) PostComment(ctx context.Context, id, text string) error {
	return r.do(ctx, "post comment", r.requireContent(id, func(acc *account) {
		if text != "" {
			acc.comments++
		}
	}))
}

func (r *Remote) StartPlayback(ctx context.Context, id string) error {
	return r.do(ctx, "start playback", r.requireContent(id, func(acc *account) {
		acc.playing = id
	}))
}

func (r *Remote) Heartbeat(ctx context.Context) error {
	return r.do(ctx, "heartbeat", func(acc *account) error {
		if acc.playing == "" {
			return ErrNotPlaying
		}
		acc.listened += heartbeatSeconds
		return nil
	})
}

func (r *Remote) EndPlayback(ctx context.Context, id string) error {
	return r.do(ctx, "end playback", func(acc *account) error {
		if acc.playing != id {
			return ErrNotPlaying
		}
		acc.playing = ""
		acc.score += playReward
		acc.gainExperience(experiencePerEnd)
		return nil
	})
}

func (r *Remote) FollowAccount(ctx context.Context, target domain.TransferTarget) error {
	return r.do(ctx, "follow", func(acc *account) error {
		acc.following[target] = struct{}{}
		return nil
	})
}

func (r *Remote) TransferScore(ctx context.Context, target domain.TransferTarget, amount int64) error {
	return r.do(ctx, "transfer score", func(acc *account) error {
		return r.backend.transferLocked(acc, target, amount)
	})
}

func (r *Remote) requireContent(id string, apply func(*account)) func(*account) error {
	return func(acc *account) error {
		if _, ok := r.backend.content[id]; !ok {
			return ErrUnknownContent
		}
		if apply != nil {
			apply(acc)
		}
		return nil
	}
}
