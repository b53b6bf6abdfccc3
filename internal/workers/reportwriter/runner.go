package reportwriter

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

// ErrQueueFull is returned when the writer cannot accept another report.
var ErrQueueFull = errors.New("report queue full")

// ErrClosed is returned for saves after Close.
var ErrClosed = errors.New("report writer closed")

const saveTimeout = 10 * time.Second

// Writer queues audit reports and saves them on background workers. It is
// itself an AuditStore, so callers cannot tell it from a synchronous one
// except that store failures surface only in the log.
type Writer struct {
	store ports.AuditStore
	jobs  chan domain.AuditReport

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ ports.AuditStore = (*Writer)(nil)

// Run starts concurrency workers draining a queue of queueSize reports into
// store. Workers keep going until Close; ctx only bounds individual saves.
func Run(ctx context.Context, store ports.AuditStore, concurrency, queueSize int) *Writer {
	if concurrency < 1 {
		concurrency = 1
	}
	if queueSize < 1 {
		queueSize = concurrency
	}
	w := &Writer{store: store, jobs: make(chan domain.AuditReport, queueSize)}
	for i := 0; i < concurrency; i++ {
		w.wg.Add(1)
		go func(idx int) {
			defer w.wg.Done()
			for report := range w.jobs {
				if err := SaveInline(ctx, store, report); err != nil {
					log.Printf("report writer %d: report %s: %v", idx, report.ID, err)
				}
			}
		}(i)
	}
	return w
}

// SaveAuditReport enqueues report without blocking.
func (w *Writer) SaveAuditReport(ctx context.Context, report domain.AuditReport) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrClosed
	}
	select {
	case w.jobs <- report:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting reports and waits for queued ones to be written.
func (w *Writer) Close() error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	w.wg.Wait()
	return nil
}

// SaveInline writes report through store with the same timeout the workers
// use. The parent context's cancellation is ignored so that shutdown drains
// rather than drops queued reports.
func SaveInline(ctx context.Context, store ports.AuditStore, report domain.AuditReport) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	return store.SaveAuditReport(ctx, report)
}
