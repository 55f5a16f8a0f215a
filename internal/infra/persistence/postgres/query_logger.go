package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tnp/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// queryLogger routes GORM's statement tracing into slog under a "db" group.
type queryLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*queryLogger)(nil)

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	if base == nil {
		base = slog.Default()
	}

	ql := &queryLogger{
		logger: base.With(slog.String("component", "postgres")),
		level:  gormlogger.Warn,
	}
	if cfg == nil {
		return ql
	}
	if cfg.Env.Debug {
		ql.level = gormlogger.Info
	}
	if cfg.Database != nil {
		ql.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return ql
}

func (q *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *q
	next.level = level

	return &next
}

func (q *queryLogger) Info(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Info, slog.LevelInfo, format, args)
}

func (q *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Warn, slog.LevelWarn, format, args)
}

func (q *queryLogger) Error(ctx context.Context, format string, args ...any) {
	q.printf(ctx, gormlogger.Error, slog.LevelError, format, args)
}

func (q *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, format string, args []any) {
	if q.level < threshold {
		return
	}
	q.logger.Log(ctx, level, fmt.Sprintf(format, args...))
}

// Trace reports one statement. Missing rows are an expected outcome for
// lookups and never count as failures.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := q.slowThreshold > 0 && elapsed > q.slowThreshold

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed && q.level >= gormlogger.Error:
		level, msg = slog.LevelError, "query failed"
	case slow && q.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "slow query"
	case q.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []any{
		slog.String("op", statementVerb(sql)),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
		slog.String("sql", sql),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if slow {
		attrs = append(attrs, slog.Duration("threshold", q.slowThreshold))
	}

	q.logger.Log(ctx, level, msg, slog.Group("db", attrs...))
}

// statementVerb returns the leading SQL keyword in upper case.
func statementVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return strings.ToUpper(verb)
}
