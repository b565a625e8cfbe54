package ports

import (
	"context"

	"files-manager/internal/model"
)

// Delivery : полученная из очереди задача, Ack подтверждает обработку
type Delivery struct {
	Job model.ThumbnailJob
	Ack func(ctx context.Context) error
}

type JobQueue interface {
	Enqueue(ctx context.Context, job model.ThumbnailJob) error
	// Dequeue : ok=false, если за время ожидания задач не появилось
	Dequeue(ctx context.Context) (delivery *Delivery, ok bool, err error)
	// DeadLetter : складывает задачу, у которой закончились попытки
	DeadLetter(ctx context.Context, job model.ThumbnailJob) error
}
