package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/logger"
	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
	domainsvcs "github.com/ghuser/rxledger/services/pharmacy/domain/services"
)

// DefaultSweepChunkSize bounds how many medicines one sweep transaction touches.
const DefaultSweepChunkSize = 10

// SweepReport summarizes one sweep run.
type SweepReport struct {
	Scanned int `json:"scanned"`
	Flagged int `json:"flagged"`
}

// ChunkResult is the outcome of processing one chunk. Done is true when the
// chunk was the last one; NextCursor resumes the scan otherwise.
type ChunkResult struct {
	NextCursor uuid.UUID
	Scanned    int
	Flagged    int
	Done       bool
}

// ExpirySweeper is the reconciliation job that stamps the sticky expired
// flag on medicines whose expiry date has passed. It reads medicines across
// ALL orgs in bounded chunks, evaluates each one independently, and persists
// only the ones that newly expired.
//
// Re-running the sweep is a no-op for already-flagged and still-unexpired
// medicines, and a malformed expiry date on one medicine never aborts the
// sweep for any other. Sales are never touched.
type ExpirySweeper struct {
	repo      repositories.MedicineRepository
	chunkSize int
	log       logger.Logger
	now       func() time.Time
}

// NewExpirySweeper returns a sweeper reading in chunks of chunkSize
// (DefaultSweepChunkSize when zero or negative).
func NewExpirySweeper(repo repositories.MedicineRepository, chunkSize int, log logger.Logger) *ExpirySweeper {
	if chunkSize <= 0 {
		chunkSize = DefaultSweepChunkSize
	}
	return &ExpirySweeper{repo: repo, chunkSize: chunkSize, log: log, now: time.Now}
}

// Run sweeps the full inventory synchronously, chunk by chunk, until the
// scan completes or ctx is cancelled. Used by the on-demand trigger; the
// periodic schedule drives SweepChunk through a workflow instead.
func (s *ExpirySweeper) Run(ctx context.Context) (SweepReport, error) {
	var report SweepReport
	cursor := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := s.SweepChunk(ctx, cursor)
		if err != nil {
			return report, err
		}
		report.Scanned += res.Scanned
		report.Flagged += res.Flagged
		if res.Done {
			break
		}
		cursor = res.NextCursor
	}

	s.log.InfoContext(ctx, "expiry sweep complete",
		"scanned", report.Scanned,
		"flagged", report.Flagged,
	)
	return report, nil
}

// SweepChunk reads one chunk starting after cursor, flags the medicines in
// it that are expired but not yet stamped, and reports where to resume.
// Each chunk is independent, so a caller (workflow or Run loop) can retry a
// failed chunk without re-processing earlier ones.
func (s *ExpirySweeper) SweepChunk(ctx context.Context, cursor uuid.UUID) (ChunkResult, error) {
	medicines, err := s.repo.ListChunk(ctx, cursor, s.chunkSize)
	if err != nil {
		return ChunkResult{}, fmt.Errorf("read sweep chunk: %w", err)
	}
	if len(medicines) == 0 {
		return ChunkResult{Done: true}, nil
	}

	asOf := s.now()
	var toFlag []uuid.UUID
	for _, m := range medicines {
		// Already-stamped medicines are skipped so the stamp write is
		// idempotent; the policy itself treats the flag as sticky.
		if !m.Expired && domainsvcs.IsExpired(m, asOf) {
			toFlag = append(toFlag, m.ID)
		}
	}

	if len(toFlag) > 0 {
		if err := s.repo.MarkExpired(ctx, toFlag); err != nil {
			return ChunkResult{}, fmt.Errorf("flag expired medicines: %w", err)
		}
	}

	return ChunkResult{
		NextCursor: medicines[len(medicines)-1].ID,
		Scanned:    len(medicines),
		Flagged:    len(toFlag),
		Done:       len(medicines) < s.chunkSize,
	}, nil
}
