package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/rxledger/pkg/config"
	"github.com/ghuser/rxledger/pkg/logger"
)

// newTestLogger creates a logger that only emits errors.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newSweeperFixture(t *testing.T, chunkSize int) (*ExpirySweeper, *fakeMedicineRepo) {
	t.Helper()
	repo := newFakeMedicineRepo()
	sweeper := NewExpirySweeper(repo, chunkSize, newTestLogger())
	sweeper.now = func() time.Time {
		return time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC)
	}
	return sweeper, repo
}

func TestExpirySweeper_FlagsOnlyNewlyExpired(t *testing.T) {
	sweeper, repo := newSweeperFixture(t, 10)
	orgA := uuid.New()
	orgB := uuid.New()

	expired := seedMedicine(t, repo, orgA, "PastDate", 1, 5, "2026-03-01")
	fresh := seedMedicine(t, repo, orgA, "FutureDate", 1, 5, "2030-01-01")
	noDate := seedMedicine(t, repo, orgB, "NoDate", 1, 5, "")
	garbage := seedMedicine(t, repo, orgB, "Garbage", 1, 5, "whenever")
	already := seedMedicine(t, repo, orgB, "AlreadyFlagged", 1, 5, "2020-01-01")
	already.Expired = true
	repo.put(already)

	report, err := sweeper.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Scanned != 5 {
		t.Fatalf("expected 5 scanned, got %d", report.Scanned)
	}
	if report.Flagged != 1 {
		t.Fatalf("expected exactly 1 flagged, got %d", report.Flagged)
	}

	if !repo.get(expired.ID).Expired {
		t.Fatal("past-date medicine must be flagged")
	}
	for _, m := range []uuid.UUID{fresh.ID, noDate.ID, garbage.ID} {
		if repo.get(m).Expired {
			t.Fatalf("medicine %v must not be flagged", m)
		}
	}
}

func TestExpirySweeper_Idempotent(t *testing.T) {
	sweeper, repo := newSweeperFixture(t, 10)
	seedMedicine(t, repo, uuid.New(), "PastDate", 1, 5, "2026-03-01")

	first, err := sweeper.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Flagged != 1 {
		t.Fatalf("expected 1 flagged on first run, got %d", first.Flagged)
	}

	second, err := sweeper.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Flagged != 0 {
		t.Fatalf("second run must flag nothing, got %d", second.Flagged)
	}
	if second.Scanned != first.Scanned {
		t.Fatalf("second run must still scan everything, got %d", second.Scanned)
	}
}

func TestExpirySweeper_ChunksCoverWholeInventory(t *testing.T) {
	sweeper, repo := newSweeperFixture(t, 3)
	for i := 0; i < 10; i++ {
		seedMedicine(t, repo, uuid.New(), uuid.NewString(), 1, 5, "2020-01-01")
	}

	report, err := sweeper.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Scanned != 10 {
		t.Fatalf("expected all 10 scanned across chunks, got %d", report.Scanned)
	}
	if report.Flagged != 10 {
		t.Fatalf("expected all 10 flagged, got %d", report.Flagged)
	}

	// No chunk may exceed the configured size.
	for _, batch := range repo.markedExpired {
		if len(batch) > 3 {
			t.Fatalf("chunk of %d exceeds chunk size 3", len(batch))
		}
	}
}

func TestExpirySweeper_SweepChunk_Resumable(t *testing.T) {
	sweeper, repo := newSweeperFixture(t, 2)
	for i := 0; i < 5; i++ {
		seedMedicine(t, repo, uuid.New(), uuid.NewString(), 1, 5, "2020-01-01")
	}

	var scanned int
	cursor := uuid.Nil
	for {
		res, err := sweeper.SweepChunk(context.Background(), cursor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		scanned += res.Scanned
		if res.Done {
			break
		}
		cursor = res.NextCursor
	}
	if scanned != 5 {
		t.Fatalf("expected 5 scanned via manual chunking, got %d", scanned)
	}
}

func TestExpirySweeper_EmptyInventory(t *testing.T) {
	sweeper, _ := newSweeperFixture(t, 10)

	report, err := sweeper.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Scanned != 0 || report.Flagged != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestExpirySweeper_DefaultChunkSize(t *testing.T) {
	repo := newFakeMedicineRepo()
	sweeper := NewExpirySweeper(repo, 0, newTestLogger())
	if sweeper.chunkSize != DefaultSweepChunkSize {
		t.Fatalf("expected default chunk size %d, got %d", DefaultSweepChunkSize, sweeper.chunkSize)
	}
}
