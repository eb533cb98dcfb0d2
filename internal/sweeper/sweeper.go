package sweeper

import (
	"log/slog"
	"time"

	"clubFinance/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSweeper
type EventSweeper interface {
	SweepEvents(now time.Time) error
}

// Run sweeps overdue events every interval until done is closed. Sweep
// failures are logged and the loop keeps going; the next tick retries.
func Run(log *slog.Logger, store EventSweeper, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := store.SweepEvents(time.Now()); err != nil {
				log.Error("failed to sweep events", sl.Err(err))
			}
		case <-done:
			return
		}
	}
}
