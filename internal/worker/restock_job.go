package worker

import (
	"context"
	"fmt"

	"github.com/lanternworks/nightmarket/internal/logger"
	"github.com/lanternworks/nightmarket/internal/merchant"
)

// RestockJob refreshes merchant stock timestamps and relaxes demand back
// toward neutral. The scheduler enqueues it on the restock interval.
type RestockJob struct {
	merchants merchant.Service
}

// NewRestockJob creates a merchant restock job
func NewRestockJob(merchantService merchant.Service) *RestockJob {
	return &RestockJob{merchants: merchantService}
}

// Process runs one restock pass
func (j *RestockJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Info(LogMsgRestockJobStarting)

	restocked, err := j.merchants.Restock(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgRestockPassFailed, err)
	}

	log.Info(LogMsgRestockJobCompleted, "merchants_restocked", restocked)
	return nil
}
