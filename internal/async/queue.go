package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one document to score. Extend as needed later (trace, retry, etc).
type Job struct {
	ID          uuid.UUID
	Path        string // source file the text came from, informational
	Text        string
	StoreHint   string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
