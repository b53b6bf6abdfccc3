package reportwriter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audithook/internal/adapters/memory"
	"audithook/internal/domain"
	"audithook/internal/ports"
)

// blockingStore holds every save until release is closed.
type blockingStore struct {
	release chan struct{}
	mu      sync.Mutex
	saved   int
}

var _ ports.AuditStore = (*blockingStore)(nil)

func (b *blockingStore) SaveAuditReport(ctx context.Context, _ domain.AuditReport) error {
	<-b.release
	b.mu.Lock()
	b.saved++
	b.mu.Unlock()
	return nil
}

type failingStore struct{}

func (failingStore) SaveAuditReport(context.Context, domain.AuditReport) error {
	return errors.New("disk full")
}

func TestWriter_DrainsOnClose(t *testing.T) {
	store := memory.New()
	w := Run(context.Background(), store, 3, 100)

	for i := 0; i < 40; i++ {
		require.NoError(t, w.SaveAuditReport(context.Background(), domain.AuditReport{ID: fmt.Sprint(i)}))
	}
	require.NoError(t, w.Close())
	assert.Len(t, store.Reports(), 40)
}

func TestWriter_QueueFull(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	w := Run(context.Background(), store, 1, 1)

	// One report can be in flight on the worker and one queued; the queue
	// must reject something before ten saves have been attempted.
	var full error
	for i := 0; i < 10 && full == nil; i++ {
		full = w.SaveAuditReport(context.Background(), domain.AuditReport{ID: fmt.Sprint(i)})
	}
	assert.ErrorIs(t, full, ErrQueueFull)

	close(store.release)
	require.NoError(t, w.Close())
}

func TestWriter_ClosedRejects(t *testing.T) {
	w := Run(context.Background(), memory.New(), 1, 1)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.SaveAuditReport(context.Background(), domain.AuditReport{}), ErrClosed)
}

func TestWriter_StoreFailureDoesNotStopWorkers(t *testing.T) {
	w := Run(context.Background(), failingStore{}, 1, 4)
	for i := 0; i < 4; i++ {
		require.NoError(t, w.SaveAuditReport(context.Background(), domain.AuditReport{ID: fmt.Sprint(i)}))
	}
	require.NoError(t, w.Close())
}

func TestSaveInline_IgnoresParentCancel(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, SaveInline(ctx, store, domain.AuditReport{ID: "x"}))
	assert.Len(t, store.Reports(), 1)
}
