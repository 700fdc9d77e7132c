package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockOutboxPublisher struct {
	mock.Mock
}

func (m *MockOutboxPublisher) Handle(ctx context.Context, cmd commands.PublishOutboxEventsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockBacklogReader struct {
	mock.Mock
}

func (m *MockBacklogReader) Backlog(ctx context.Context) ([]queries.PendingBacklogResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.PendingBacklogResponse), args.Error(1)
}

func TestOutboxRelayJob_DrainsFullBatches(t *testing.T) {
	publisher := &MockOutboxPublisher{}
	publisher.On("Handle", mock.Anything, mock.Anything).Return(10, nil).Twice()
	publisher.On("Handle", mock.Anything, mock.Anything).Return(3, nil).Once()

	job, err := NewOutboxRelayJob(publisher, 10, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 23, job.Run(context.Background()))
	publisher.AssertNumberOfCalls(t, "Handle", 3)
}

func TestOutboxRelayJob_EmptyOutboxIsNotAnError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	publisher := &MockOutboxPublisher{}
	publisher.On("Handle", mock.Anything, mock.Anything).Return(0, commands.ErrNoOutboxEvents).Once()

	job, err := NewOutboxRelayJob(publisher, 10, zap.New(core))
	require.NoError(t, err)

	assert.Zero(t, job.Run(context.Background()))
	assert.Zero(t, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestOutboxRelayJob_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	publisher := &MockOutboxPublisher{}
	publisher.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("broker down")).Once()

	job, err := NewOutboxRelayJob(publisher, 10, zap.New(core))
	require.NoError(t, err)

	assert.Zero(t, job.Run(context.Background()))
	require.Equal(t, 1, logs.FilterMessage("Outbox relay job failed").Len())
	publisher.AssertNumberOfCalls(t, "Handle", 1)
}

func TestNewOutboxRelayJob_InvalidBatchSize(t *testing.T) {
	_, err := NewOutboxRelayJob(&MockOutboxPublisher{}, 0, zap.NewNop())

	require.ErrorIs(t, err, commands.ErrBatchSizeIsInvalid)
}

func TestPendingBacklogJob_LogsEveryDestination(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reader := &MockBacklogReader{}
	reader.On("Backlog", mock.Anything).Return([]queries.PendingBacklogResponse{
		{Destination: "MY", Count: 2},
		{Destination: "SG", Count: 1},
	}, nil)

	NewPendingBacklogJob(reader, zap.New(core)).Run(context.Background())

	entries := logs.FilterMessage("pending items waiting for a container").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "MY", entries[0].ContextMap()["destination"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["count"])
}

func TestPendingBacklogJob_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reader := &MockBacklogReader{}
	reader.On("Backlog", mock.Anything).Return(nil, errors.New("connection refused"))

	NewPendingBacklogJob(reader, zap.New(core)).Run(context.Background())

	assert.Equal(t, 1, logs.FilterMessage("Pending backlog job failed").Len())
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
	order    *[]string
	name     string
}

func (f *fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeJob) Stop() {
	f.stopped = true
	*f.order = append(*f.order, f.name)
}

func TestJobManager_StartStop(t *testing.T) {
	var order []string
	first := &fakeJob{name: "first", order: &order}
	second := &fakeJob{name: "second", order: &order}
	var relay *OutboxRelayJob

	jm := NewJobManager(first, relay, second)
	require.NoError(t, jm.StartAll())
	assert.True(t, first.started)
	assert.True(t, second.started)

	jm.StopAll()
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	var order []string
	first := &fakeJob{name: "first", order: &order}
	second := &fakeJob{name: "second", order: &order, startErr: errors.New("bad schedule")}

	jm := NewJobManager(first, second)
	err := jm.StartAll()

	require.Error(t, err)
	assert.True(t, first.stopped)
	assert.False(t, second.stopped)
}

func TestOutboxRelayJob_StartStop(t *testing.T) {
	publisher := &MockOutboxPublisher{}
	publisher.On("Handle", mock.Anything, mock.Anything).Return(0, commands.ErrNoOutboxEvents).Maybe()

	job, err := NewOutboxRelayJob(publisher, 10, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, job.Start())
	job.Stop()
}

func TestOutboxRelayJob_RunStopsWhenContextIsDone(t *testing.T) {
	publisher := &MockOutboxPublisher{}

	job, err := NewOutboxRelayJob(publisher, 10, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Zero(t, job.Run(ctx))
	publisher.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOutboxRelayJob_StopCancelsRunningRelay(t *testing.T) {
	entered := make(chan struct{})
	publisher := &MockOutboxPublisher{}
	publisher.On("Handle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(entered)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(0, context.Canceled).
		Once()

	job, err := NewOutboxRelayJob(publisher, 10, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, job.Start())

	select {
	case <-entered:
	case <-time.After(3 * time.Second):
		t.Fatal("relay did not run")
	}

	stopped := make(chan struct{})
	go func() {
		job.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not cancel the running relay")
	}
	publisher.AssertNumberOfCalls(t, "Handle", 1)
}

func TestPendingBacklogJob_StopCancelsRunningReport(t *testing.T) {
	reader := &MockBacklogReader{}
	job := NewPendingBacklogJob(reader, zap.NewNop())

	job.Stop()

	reader.On("Backlog", mock.MatchedBy(func(ctx context.Context) bool {
		return errors.Is(ctx.Err(), context.Canceled)
	})).Return(nil, context.Canceled).Once()

	job.Run(job.ctx)
	reader.AssertExpectations(t)
}
