// Package worker : потребитель очереди превью
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"files-manager/internal/model"
	"files-manager/internal/ports"

	"golang.org/x/sync/errgroup"
)

// errorPause : пауза после ошибки чтения очереди, чтобы не крутиться вхолостую
const errorPause = time.Second

// retryEnqueueTimeout : сколько ждать места в очереди для повтора
var retryEnqueueTimeout = 5 * time.Second

// Config : MaxAttempts = 1 значит без повторов
type Config struct {
	Concurrency  int
	MaxAttempts  int
	RetryBackoff time.Duration
	DeadLetter   bool
}

type Worker struct {
	queue     ports.JobQueue
	processor ports.ThumbnailService
	cfg       Config
	logger    *slog.Logger
}

func New(queue ports.JobQueue, processor ports.ThumbnailService, cfg Config, logger *slog.Logger) *Worker {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{queue: queue, processor: processor, cfg: cfg, logger: logger}
}

// Run : cfg.Concurrency потребителей до отмены ctx
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("[Worker] запуск", "concurrency", w.cfg.Concurrency, "max_attempts", w.cfg.MaxAttempts)

	group, gctx := errgroup.WithContext(ctx)
	for i := 0; i < w.cfg.Concurrency; i++ {
		id := i
		group.Go(func() error {
			w.consume(gctx, id)
			return nil
		})
	}

	err := group.Wait()
	w.logger.Info("[Worker] остановлен")
	return err
}

func (w *Worker) consume(ctx context.Context, id int) {
	for ctx.Err() == nil {
		delivery, ok, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			w.logger.Error("[Worker] ошибка чтения очереди", "consumer", id, "error", err)
			sleep(ctx, errorPause)
			continue
		}
		if !ok {
			continue
		}

		w.Handle(ctx, delivery)
	}
}

// Handle : обработка одной задачи с политикой повторов, затем Ack
func (w *Worker) Handle(ctx context.Context, delivery *ports.Delivery) {
	job := delivery.Job
	attempt := job.Attempt + 1
	log := w.logger.With("file_id", job.FileID, "user_id", job.UserID, "attempt", attempt)

	start := time.Now()
	err := w.process(ctx, job)
	switch {
	case err == nil:
		log.Info("[Worker] превью созданы", "duration", time.Since(start))
	case attempt < w.cfg.MaxAttempts:
		log.Warn("[Worker] задача упала, будет повтор", "error", err, "backoff", w.cfg.RetryBackoff)
		w.retry(ctx, job, attempt)
	default:
		log.Error("[Worker] задача упала окончательно", "error", err)
		if w.cfg.DeadLetter {
			if dlErr := w.queue.DeadLetter(ctx, job); dlErr != nil {
				log.Error("[Worker] не удалось сохранить задачу в dead letter", "error", dlErr)
			}
		}
	}

	if err := delivery.Ack(ctx); err != nil {
		log.Error("[Worker] не удалось подтвердить задачу", "error", err)
	}
}

// process : паника обработчика считается ошибкой задачи
func (w *Worker) process(ctx context.Context, job model.ThumbnailJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("паника при обработке задачи: %v", r)
		}
	}()
	return w.processor.Process(ctx, job)
}

// retry : повтор ставится с ограничением по времени, при переполненной очереди
// задача уходит в dead letter
func (w *Worker) retry(ctx context.Context, job model.ThumbnailJob, attempt int) {
	if !sleep(ctx, w.cfg.RetryBackoff) {
		return
	}

	job.Attempt = attempt
	enqueueCtx, cancel := context.WithTimeout(ctx, retryEnqueueTimeout)
	defer cancel()

	if err := w.queue.Enqueue(enqueueCtx, job); err != nil {
		w.logger.Error("[Worker] не удалось поставить повтор", "file_id", job.FileID, "error", err)
		if w.cfg.DeadLetter && ctx.Err() == nil {
			if dlErr := w.queue.DeadLetter(ctx, job); dlErr != nil {
				w.logger.Error("[Worker] не удалось сохранить задачу в dead letter", "file_id", job.FileID, "error", dlErr)
			}
		}
	}
}

// sleep : false, если ctx отменён раньше
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
