package schedule

import (
	"context"
	"log/slog"
	"time"
)

type Task interface {
	Run(ctx context.Context) error
	Name() string
}

// RunEvery runs task immediately and then on every tick until ctx is done.
// A failing run is logged, not fatal.
func RunEvery(ctx context.Context, task Task, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := task.Run(ctx); err != nil {
			slog.Error("task run failed", "task", task.Name(), "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
