package jobs

import (
	"context"

	"tracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// BacklogReader reports the pending queue depth per destination.
type BacklogReader interface {
	Backlog(ctx context.Context) ([]queries.PendingBacklogResponse, error)
}

// PendingBacklogJob logs the pending queues of the local container registry every
// 30 seconds, so operators can see destinations waiting for a container.
type PendingBacklogJob struct {
	reader BacklogReader
	cron   *cron.Cron
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewPendingBacklogJob(reader BacklogReader, logger *zap.Logger) *PendingBacklogJob {
	ctx, cancel := context.WithCancel(context.Background())
	log := logger.With(zap.String("component", "pending_backlog_job"))
	return &PendingBacklogJob{
		reader: reader,
		cron:   newCron(log),
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins the backlog job to run every 30 seconds.
func (j *PendingBacklogJob) Start() error {
	if _, err := j.cron.AddFunc("*/30 * * * * *", func() { j.Run(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pending backlog job started (running every 30 seconds)")
	return nil
}

// Run logs one report.
func (j *PendingBacklogJob) Run(ctx context.Context) {
	backlog, err := j.reader.Backlog(ctx)
	if err != nil {
		j.logger.Error("Pending backlog job failed", zap.Error(err))
		return
	}

	var total int64
	for _, b := range backlog {
		total += b.Count
		j.logger.Info("pending items waiting for a container",
			zap.String("destination", b.Destination),
			zap.Int64("count", b.Count),
		)
	}
	j.logger.Debug("pending backlog", zap.Int("destinations", len(backlog)), zap.Int64("total", total))
}

// Stop stops the backlog job.
func (j *PendingBacklogJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.Info("Pending backlog job stopped")
}
