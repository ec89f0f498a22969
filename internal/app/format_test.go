package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bft-labs/scoreship/internal/domain"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:03:00", formatClock(180))
	assert.Equal(t, "24:00:00", formatClock(86400))
	assert.Equal(t, "01:01:01", formatClock(3661))
	assert.Equal(t, "00:00:00", formatClock(-4))
}

func TestTaskProgress(t *testing.T) {
	tests := []struct {
		name string
		task domain.Task
		want string
	}{
		{"listening minutes", domain.Task{Key: "play_music", Unit: "minutes", CompleteNum: 60}, "2/60"},
		{"item count", domain.Task{Key: "share", ItemCount: "3/3"}, "3/3"},
		{"max complete", domain.Task{CompletedRounds: 2, MaxComplete: 10, CompleteNum: 5}, "2/10"},
		{"complete num fallback", domain.Task{CompletedRounds: 1, CompleteNum: 5}, "1/5"},
		{"empty", domain.Task{}, "0/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taskProgress(tt.task, 150))
		})
	}
}

func TestTaskSummarySkipsUnnamed(t *testing.T) {
	got := taskSummary([]domain.Task{
		{Name: "Comment", CompletedRounds: 1, CompleteNum: 3, RewardScore: 5},
		{},
	}, 0)
	assert.Equal(t, "Comment 1/3 (5 pts)", got)
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, 180, firstPositive(0, -1, 180))
	assert.Equal(t, 0, firstPositive())
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "ok", outcome(nil))
}
