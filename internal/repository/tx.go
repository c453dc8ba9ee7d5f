package repository

import "context"

// Tx is the base interface all transactional handles embed
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
