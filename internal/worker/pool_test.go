package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_JobErrorKeepsWorkerAlive(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("pass blew up")})
	pool.Enqueue(&testJob{executed: &executed})

	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)
	pool.Stop()

	if atomic.LoadInt32(&executed) != 2 {
		t.Errorf("Expected the worker to survive a failing job, got %d executions", executed)
	}
}

func TestPool_TryEnqueueReportsFullQueue(t *testing.T) {
	var executed int32
	// No workers started, so the queue never drains
	pool := NewPool(1, 1)

	job := &testJob{executed: &executed}
	if !pool.TryEnqueue(job) {
		t.Fatal("Expected first TryEnqueue to succeed")
	}
	if pool.TryEnqueue(job) {
		t.Error("Expected TryEnqueue on a full queue to report false")
	}
}
