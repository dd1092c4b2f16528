// internal/workers/types.go
package workers

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names registered on the asynq mux.
const (
	TypeStockIntake       = "stock:intake"
	TypeExpirySweep       = "stock:expiry_sweep"
	TypeReleaseStaleHolds = "stock:release_stale_holds"
	TypeCleanupOldData    = "cleanup:old_data"
	TypeCleanupTempFiles  = "cleanup:temp_files"
)

// StockIntakePayload carries an uploaded spreadsheet into the intake worker.
type StockIntakePayload struct {
	JobID    string `json:"job_id"`
	FilePath string `json:"file_path"`
}

// NewStockIntakeTask builds the intake task for an uploaded file.
func NewStockIntakeTask(jobID, filePath string) (*asynq.Task, error) {
	payload, err := json.Marshal(StockIntakePayload{JobID: jobID, FilePath: filePath})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intake payload: %w", err)
	}
	return asynq.NewTask(TypeStockIntake, payload), nil
}

// NewExpirySweepTask builds the periodic expiry sweep task.
func NewExpirySweepTask() *asynq.Task {
	return asynq.NewTask(TypeExpirySweep, nil)
}

// NewReleaseStaleHoldsTask builds the periodic stale reservation release task.
func NewReleaseStaleHoldsTask() *asynq.Task {
	return asynq.NewTask(TypeReleaseStaleHolds, nil)
}
