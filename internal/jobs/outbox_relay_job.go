package jobs

import (
	"context"
	"errors"

	"tracking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OutboxPublisher relays one batch of stored domain events.
type OutboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxEventsCommand) (int, error)
}

// OutboxRelayJob publishes stored domain events every second.
// Each run drains the outbox batch by batch until a batch comes back short.
type OutboxRelayJob struct {
	handler OutboxPublisher
	cmd     commands.PublishOutboxEventsCommand
	cron    *cron.Cron
	logger  *zap.Logger

	// ctx is cancelled by Stop so a running relay gives up.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewOutboxRelayJob creates the relay job. batchSize must be positive.
func NewOutboxRelayJob(handler OutboxPublisher, batchSize int, logger *zap.Logger) (*OutboxRelayJob, error) {
	cmd, err := commands.NewPublishOutboxEventsCommand(batchSize)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	log := logger.With(zap.String("component", "outbox_relay_job"))
	return &OutboxRelayJob{
		handler: handler,
		cmd:     cmd,
		cron:    newCron(log),
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", func() { j.Run(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started (running every second)")
	return nil
}

// Run relays until the outbox is empty, a batch fails or ctx is done, and returns the
// number of events published.
func (j *OutboxRelayJob) Run(ctx context.Context) int {
	total := 0
	for {
		if ctx.Err() != nil {
			return total
		}

		n, err := j.handler.Handle(ctx, j.cmd)
		total += n

		if err != nil {
			if !errors.Is(err, commands.ErrNoOutboxEvents) && ctx.Err() == nil {
				j.logger.Error("Outbox relay job failed", zap.Error(err))
			}
			return total
		}
		if n < j.cmd.BatchSize() {
			return total
		}
	}
}

// Stop cancels a running relay and waits for it to return.
func (j *OutboxRelayJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
