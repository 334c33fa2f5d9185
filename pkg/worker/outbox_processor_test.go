package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscribe/notetaker-api/internal/model"
	"github.com/medscribe/notetaker-api/pkg/logger"
	"github.com/medscribe/notetaker-api/pkg/messaging"
	"github.com/medscribe/notetaker-api/pkg/metrics"
)

// Registered once: promauto metrics live on the default registry.
var testMetrics = metrics.New("notetaker", "workertest")

type fakeOutboxRepo struct {
	mu       sync.Mutex
	pending  []*model.OutboxEvent
	statuses map[uuid.UUID]model.OutboxStatus
	deleted  chan time.Time
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{
		statuses: make(map[uuid.UUID]model.OutboxStatus),
		deleted:  make(chan time.Time, 1),
	}
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *model.OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, event)
	return nil
}

func (f *fakeOutboxRepo) GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.pending
	f.pending = nil
	return events, nil
}

func (f *fakeOutboxRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[id] = status
	return nil
}

func (f *fakeOutboxRepo) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	select {
	case f.deleted <- before:
	default:
	}
	return 1, nil
}

func (f *fakeOutboxRepo) statusOf(id uuid.UUID) model.OutboxStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses[id]
}

type fakeBroker struct {
	published chan *messaging.Message
}

func (b *fakeBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	if msg, ok := message.(*messaging.Message); ok {
		select {
		case b.published <- msg:
		default:
		}
	}
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	return nil, nil
}

func (b *fakeBroker) Close() error { return nil }

func newTestProcessor(repo *fakeOutboxRepo, broker *fakeBroker) *OutboxProcessor {
	return NewOutboxProcessor(repo, broker, OutboxProcessorConfig{
		BatchSize:       10,
		PollInterval:    5 * time.Millisecond,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
		Retention:       time.Hour,
		CleanupInterval: 5 * time.Millisecond,
	}, logger.New(nil), testMetrics)
}

func TestProcessorPublishesPendingEvents(t *testing.T) {
	repo := newFakeOutboxRepo()
	broker := &fakeBroker{published: make(chan *messaging.Message, 1)}

	event := &model.OutboxEvent{EventType: "report.created", Payload: []byte(`{}`)}
	event.ID = uuid.New()
	repo.pending = []*model.OutboxEvent{event}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go newTestProcessor(repo, broker).Start(ctx)

	select {
	case msg := <-broker.published:
		assert.Equal(t, "report.created", msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}

	require.Eventually(t, func() bool {
		return repo.statusOf(event.ID) == model.OutboxStatusProcessed
	}, 2*time.Second, 5*time.Millisecond)
}

func TestProcessorCleansUpProcessedEvents(t *testing.T) {
	repo := newFakeOutboxRepo()
	broker := &fakeBroker{published: make(chan *messaging.Message, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go newTestProcessor(repo, broker).Start(ctx)

	select {
	case before := <-repo.deleted:
		assert.WithinDuration(t, time.Now().Add(-time.Hour), before, time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup tick never ran")
	}
}

func TestProcessorConfigValidation(t *testing.T) {
	assert.Panics(t, func() {
		NewOutboxProcessor(newFakeOutboxRepo(), &fakeBroker{}, OutboxProcessorConfig{
			BatchSize:     10,
			PollInterval:  time.Second,
			RetryAttempts: 1,
			RetryDelay:    time.Second,
		}, logger.New(nil), testMetrics)
	})
}
