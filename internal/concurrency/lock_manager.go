package concurrency

import (
	"sync"
)

// LockManager hands out named locks. The trading services use it to
// serialize every mutating operation for one player within this process;
// cross-process safety comes from row locks in the database.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockPlayer acquires the per-player mutex and returns its unlock func:
//
//	defer locks.LockPlayer(playerID)()
func (lm *LockManager) LockPlayer(playerID string) func() {
	lock := lm.GetLock("player:" + playerID)
	lock.Lock()
	return lock.Unlock
}
