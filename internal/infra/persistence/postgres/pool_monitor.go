package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// poolMonitor samples database/sql pool statistics and reports requests
// that had to wait for a free connection.
type poolMonitor struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	interval  time.Duration
	warnAfter time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	last := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.report(ctx, last, cur)
			last = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, last, cur sql.DBStats) {
	waits := cur.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - last.WaitDuration

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.Log(ctx, level, "connection pool contention",
		slog.Group("pool",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("open", cur.OpenConnections),
			slog.Int("inUse", cur.InUse),
			slog.Int("idle", cur.Idle),
			slog.Int("maxOpen", cur.MaxOpenConnections),
		),
	)
}
