package jobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var _ cron.Logger = cronLogger{}

// cronLogger routes the scheduler's own messages to zap.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func newCronLogger(logger *zap.Logger) cronLogger {
	return cronLogger{sugar: logger.Sugar()}
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}

func newCron(logger *zap.Logger) *cron.Cron {
	cl := newCronLogger(logger)
	return cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
}
