package queue

import (
	"context"
	"sync"
	"time"

	"files-manager/internal/model"
	"files-manager/internal/ports"
)

// MemoryQueue : очередь в памяти процесса, для тестов и запуска API вместе с воркером
type MemoryQueue struct {
	jobs        chan model.ThumbnailJob
	pollTimeout time.Duration

	mu   sync.Mutex
	dead []model.ThumbnailJob
}

func NewMemoryQueue(buffer int, pollTimeout time.Duration) *MemoryQueue {
	return &MemoryQueue{
		jobs:        make(chan model.ThumbnailJob, buffer),
		pollTimeout: pollTimeout,
	}
}

// Enqueue : при заполненном буфере ждёт до отмены ctx
func (q *MemoryQueue) Enqueue(ctx context.Context, job model.ThumbnailJob) error {
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Dequeue(ctx context.Context) (*ports.Delivery, bool, error) {
	timer := time.NewTimer(q.pollTimeout)
	defer timer.Stop()

	select {
	case job := <-q.jobs:
		return &ports.Delivery{Job: job, Ack: func(context.Context) error { return nil }}, true, nil
	case <-timer.C:
		return nil, false, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (q *MemoryQueue) DeadLetter(_ context.Context, job model.ThumbnailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dead = append(q.dead, job)
	return nil
}

func (q *MemoryQueue) DeadLetters() []model.ThumbnailJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]model.ThumbnailJob(nil), q.dead...)
}

func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}
