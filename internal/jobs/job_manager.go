package jobs

import (
	"fmt"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a job manager for jobs. Nil jobs are skipped, so optional
// jobs can be passed unconditionally.
func NewJobManager(jobs ...Job) *JobManager {
	jm := &JobManager{}
	for _, j := range jobs {
		if j == nil || isNilJob(j) {
			continue
		}
		jm.jobs = append(jm.jobs, j)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job %d (%T): %w", i, j, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops all started jobs gracefully, in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

func isNilJob(j Job) bool {
	switch v := j.(type) {
	case *OutboxRelayJob:
		return v == nil
	case *PendingBacklogJob:
		return v == nil
	default:
		return false
	}
}
