// Package requery доводит до конечного статуса покупки, по которым поставщик не дал окончательного ответа.
package requery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 5 * time.Second
	defaultAPITimeout             = 15 * time.Second
	defaultInterval               = 30 * time.Second
	defaultLimitPerIteration uint = 50
	defaultWorkers           uint = 5
)

// Processor периодически перезапрашивает у поставщика статус зависших покупок.
type Processor struct {
	svs               Servicer
	l                 *logrus.Entry
	interval          time.Duration
	limitPerIteration uint
	workers           uint
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "requery",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		l:                 loggerEntry,
		interval:          defaultInterval,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
	}
}

// SetInterval устанавливает паузу между итерациями обработчика.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// SetLimitPerIteration устанавливает кол-во покупок, обрабатываемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, параллельно опрашивающих поставщика.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// Run обрабатывает зависшие покупки до отмены контекста.
//
// Каждая итерация берет через сервисный слой пачку PENDING покупок, раздает их воркерам,
// которые перезапрашивают статус у поставщика, и передает все ответы в сервисный слой одним вызовом.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"interval":          p.interval,
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
	}).Info("Starting")

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoPending) {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *Processor) process(ctx context.Context) error {
	pending, err := p.produce(ctx)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	results := p.runWorkers(ctx, pending)
	if len(results) == 0 {
		return nil
	}

	svcCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if resolveErr := p.svs.ResolvePending(svcCtx, results); resolveErr != nil {
		return fmt.Errorf("process: %s", resolveErr.Error())
	}
	return nil
}

// runWorkers fan-out/fan-in опрос поставщика.
func (p *Processor) runWorkers(ctx context.Context, pending []domain.Transaction) []service.RequeryResult {
	taskCh := make(chan *domain.Transaction, len(pending))
	for i := range pending {
		taskCh <- &pending[i]
	}
	close(taskCh)

	resultCh := make(chan service.RequeryResult, len(pending))

	wg := new(sync.WaitGroup)
	for i := range p.workers {
		wg.Add(1)
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]service.RequeryResult, 0, len(pending))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Transaction,
	resultCh chan<- service.RequeryResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			result := p.requery(ctx, task)
			l := p.l.WithFields(logrus.Fields{
				"worker":    workerID,
				"reference": task.Reference,
				"attempt":   task.Attempts + 1,
			})
			if result.Error != nil {
				l.WithError(result.Error).Warn("requery failed")
			} else {
				l.WithField("status", result.Status).Info("requery done")
			}
			resultCh <- result
		}
	}
}

// requery запрашивает статус покупки. При ответе 429 ждет указанное поставщиком время и повторяет запрос.
func (p *Processor) requery(ctx context.Context, task *domain.Transaction) service.RequeryResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		resp, err := p.svs.Requery(reqCtx, task.Reference)
		cancel()

		if err != nil {
			var tooManyReq *vtu.TooManyRequestError
			if !errors.As(err, &tooManyReq) {
				return service.RequeryResult{TransactionID: task.ID, Error: err}
			}
			select {
			case <-ctx.Done():
				return service.RequeryResult{TransactionID: task.ID, Error: ctx.Err()}
			case <-time.After(tooManyReq.RetryAfter):
				continue
			}
		}

		return service.RequeryResult{
			TransactionID:   task.ID,
			Status:          resp.Status,
			VendorReference: resp.Reference,
			Message:         resp.Message,
		}
	}
}

// produce возвращает ErrNoPending, если обрабатывать нечего.
func (p *Processor) produce(ctx context.Context) ([]domain.Transaction, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	pending, err := p.svs.PendingPurchases(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(pending) == 0 {
		return nil, ErrNoPending
	}
	return pending, nil
}
