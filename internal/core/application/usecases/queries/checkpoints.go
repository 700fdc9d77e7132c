// Package queries contains read operations for retrieving registry state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read committed state directly through SQL and never take the registry lock.
package queries

import (
	"database/sql"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// CheckpointResponse is one audit trail entry in the read model.
// Handler is the zero address when no handler was recorded.
type CheckpointResponse struct {
	StatusLabel string
	Description string
	Handler     kernel.Address
	Location    string
	RecordedAt  time.Time
}

func scanCheckpoints(rows *sql.Rows) ([]CheckpointResponse, error) {
	checkpoints := make([]CheckpointResponse, 0)
	for rows.Next() {
		var cp CheckpointResponse
		var handler string
		if err := rows.Scan(&cp.StatusLabel, &cp.Description, &handler, &cp.Location, &cp.RecordedAt); err != nil {
			return nil, err
		}

		addr, err := kernel.ParseOptionalAddress(handler)
		if err != nil {
			return nil, err
		}
		cp.Handler = addr
		cp.RecordedAt = cp.RecordedAt.UTC()
		checkpoints = append(checkpoints, cp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return checkpoints, nil
}

func validateQueryID(name string, id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
