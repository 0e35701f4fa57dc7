package ports

import (
	"context"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

// CancellationDispatcher hands a cancellation job to the background
// queue. Submission only: the job outcome is the worker's problem.
type CancellationDispatcher interface {
	EnqueueCancellation(ctx context.Context, job *domain.CancellationJob) error
}
