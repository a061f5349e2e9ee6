package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryModExplorer_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	done     chan struct{}
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	j.done <- struct{}{}
	return nil
}

// blockingJob runs until its context ends
type blockingJob struct {
	started chan struct{}
	err     chan error
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	j.err <- ctx.Err()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	leaktest.Verify(t)
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize, 0)
	pool.Start()

	job := &testJob{executed: &executed, done: make(chan struct{}, TestExpectedJobCount)}
	pool.Enqueue(job)
	pool.Enqueue(job)

	for i := 0; i < TestExpectedJobCount; i++ {
		select {
		case <-job.done:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for job")
		}
	}
	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1, TestJobTimeout*time.Millisecond)
	pool.Start()
	defer pool.Stop()

	job := &blockingJob{started: make(chan struct{}), err: make(chan error, 1)}
	pool.Enqueue(job)

	select {
	case err := <-job.err:
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	case <-time.After(time.Second):
		t.Fatal("job was not cancelled by its timeout")
	}
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	leaktest.Verify(t)
	pool := NewPool(1, 1, 0)
	pool.Start()

	job := &blockingJob{started: make(chan struct{}), err: make(chan error, 1)}
	pool.Enqueue(job)
	<-job.started

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pool.Shutdown(ctx))
	assert.ErrorIs(t, <-job.err, context.Canceled)
}

func TestPool_TryEnqueue(t *testing.T) {
	// Not started, so nothing drains the queue
	pool := NewPool(1, 1, 0)

	var executed int32
	job := &testJob{executed: &executed, done: make(chan struct{}, 1)}

	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job), "queue is full")

	pool.Stop()
	assert.False(t, pool.TryEnqueue(job), "pool is stopped")
}
