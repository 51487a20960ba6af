package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
)

func TestScoreQueueProcessesAll(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[uuid.UUID]string{}
	q := NewScoreQueue(func(_ context.Context, job Job) error {
		mu.Lock()
		seen[job.ID] = job.Text
		mu.Unlock()
		return nil
	}, slog.Default(), WithWorkers(2), WithQueueSize(8))

	ctx := context.Background()
	jobs := make([]Job, 5)
	for i := range jobs {
		jobs[i] = Job{ID: uuid.New(), Text: "doc", SubmittedAt: time.Now()}
		require.NoError(t, q.Enqueue(ctx, jobs[i]))
	}
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 5)
	for _, j := range jobs {
		require.Equal(t, constants.ScanStatusScored, q.Status(j.ID))
	}
}

func TestScoreQueueTracksFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	q := NewScoreQueue(func(_ context.Context, job Job) error {
		if job.Text == "" {
			return boom
		}
		return nil
	}, slog.Default(), WithWorkers(1))

	ctx := context.Background()
	bad := Job{ID: uuid.New()}
	good := Job{ID: uuid.New(), Text: "doc"}
	require.NoError(t, q.Enqueue(ctx, bad))
	require.NoError(t, q.Enqueue(ctx, good))
	q.Shutdown(ctx)

	require.Equal(t, constants.ScanStatusFailed, q.Status(bad.ID))
	require.Equal(t, constants.ScanStatusScored, q.Status(good.ID))
}

// Shutting down while other goroutines are mid-Enqueue must never close the
// channel under a pending send.
func TestScoreQueueShutdownDuringEnqueue(t *testing.T) {
	t.Parallel()

	for i := 0; i < 25; i++ {
		q := NewScoreQueue(func(context.Context, Job) error { return nil },
			slog.Default(), WithWorkers(2), WithQueueSize(1))

		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					require.NoError(t, q.Enqueue(context.Background(), Job{ID: uuid.New(), Text: "doc"}))
				}
			}()
		}
		q.Shutdown(context.Background())
		wg.Wait()
	}
}

func TestScoreQueueEnqueueAfterShutdown(t *testing.T) {
	t.Parallel()

	q := NewScoreQueue(func(context.Context, Job) error { return nil }, slog.Default(), WithWorkers(1))
	ctx := context.Background()
	q.Shutdown(ctx)

	// dropped, not panicking on the closed channel
	require.NoError(t, q.Enqueue(ctx, Job{ID: uuid.New()}))
}
