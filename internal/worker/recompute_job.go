package worker

import (
	"context"
	"fmt"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/market"
	"github.com/lanternworks/nightmarket/internal/metrics"
)

// RecomputeJob advances every quoted price one step of the bounded walk.
// The scheduler enqueues it on the recompute interval.
type RecomputeJob struct {
	market market.Service
}

// NewRecomputeJob creates a price recompute job
func NewRecomputeJob(marketService market.Service) *RecomputeJob {
	return &RecomputeJob{market: marketService}
}

// Process runs one recompute pass
func (j *RecomputeJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Info(LogMsgRecomputeJobStarting)

	updated, err := j.market.RecomputeAll(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgRecomputePassFailed, err)
	}

	// Per-item updates are counted off the event bus; the pass itself
	// only happens here.
	metrics.RecomputePasses.Inc()

	log.Info(LogMsgRecomputeJobCompleted, "prices_updated", updated)
	return nil
}
