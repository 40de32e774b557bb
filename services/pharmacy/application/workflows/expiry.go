// Package workflows holds the Temporal workflow and activities that drive the
// scheduled expiry sweep.
package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/ghuser/rxledger/services/pharmacy/application/services"
)

// TaskQueue is the Temporal task queue the sweep worker polls.
const TaskQueue = "rxledger-pharmacy"

// ExpirySweepWorkflowID pins the workflow ID so concurrent cron fires cannot
// overlap.
const ExpirySweepWorkflowID = "expiry-sweep"

// ExpirySweepActivities exposes sweep chunks as Temporal activities.
type ExpirySweepActivities struct {
	Sweeper *appsvcs.ExpirySweeper
}

// SweepChunk processes one chunk of the inventory scan. Chunks are
// independent and idempotent, so Temporal can retry a failed chunk without
// corrupting the scan.
func (a *ExpirySweepActivities) SweepChunk(ctx context.Context, cursor uuid.UUID) (appsvcs.ChunkResult, error) {
	return a.Sweeper.SweepChunk(ctx, cursor)
}

// ExpirySweepWorkflow walks the full inventory chunk by chunk. State between
// chunks is just the cursor, so the workflow history stays small even for
// large inventories.
func ExpirySweepWorkflow(ctx workflow.Context) (appsvcs.SweepReport, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumInterval: time.Minute,
			MaximumAttempts: 5,
		},
	})

	log := workflow.GetLogger(ctx)

	var report appsvcs.SweepReport
	var activities *ExpirySweepActivities
	cursor := uuid.Nil
	for {
		var res appsvcs.ChunkResult
		if err := workflow.ExecuteActivity(ctx, activities.SweepChunk, cursor).Get(ctx, &res); err != nil {
			return report, err
		}
		report.Scanned += res.Scanned
		report.Flagged += res.Flagged
		if res.Done {
			break
		}
		cursor = res.NextCursor
	}

	log.Info("expiry sweep finished", "scanned", report.Scanned, "flagged", report.Flagged)
	return report, nil
}
