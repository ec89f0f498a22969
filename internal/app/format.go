package app

import (
	"fmt"
	"strings"

	"github.com/bft-labs/scoreship/internal/domain"
)

const (
	listeningTaskKey  = "play_music"
	listeningTaskUnit = "minutes"
)

// formatClock renders seconds as HH:MM:SS.
func formatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// taskProgress renders the progress of a daily task. The listening task is
// tracked locally in minutes.
func taskProgress(t domain.Task, listeningSeconds int64) string {
	if t.Key == listeningTaskKey && t.Unit == listeningTaskUnit {
		return fmt.Sprintf("%d/%d", listeningSeconds/60, t.CompleteNum)
	}
	if t.ItemCount != "" {
		return t.ItemCount
	}
	limit := t.MaxComplete
	if limit == 0 {
		limit = t.CompleteNum
	}
	return fmt.Sprintf("%d/%d", t.CompletedRounds, limit)
}

func taskSummary(tasks []domain.Task, listeningSeconds int64) string {
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.Name == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s (%d pts)", t.Name, taskProgress(t, listeningSeconds), t.RewardScore))
	}
	return strings.Join(parts, "; ")
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func outcome(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}

// maskCredential keeps the first ten characters of a secret for log lines.
func maskCredential(credential string) string {
	const keep = 10
	if len(credential) <= keep {
		return strings.Repeat("*", len(credential))
	}
	return credential[:keep] + "..."
}
