package jobs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSessionExpirer_Run(t *testing.T) {
	ctx := context.Background()
	store := inmemory.NewSessionStore()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, domain.NewSession(1, now.Add(-25*time.Hour))))
	require.NoError(t, store.Save(ctx, domain.NewSession(2, now.Add(-time.Hour))))

	job := NewSessionExpirer(store, 24*time.Hour, discardLog)
	job.now = func() time.Time { return now }

	require.NoError(t, job.Run(ctx))

	_, err := store.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(ctx, 2)
	assert.NoError(t, err)
}

func TestSessionExpirer_NextRun(t *testing.T) {
	job := NewSessionExpirer(nil, time.Hour, discardLog)

	now := time.Date(2026, 1, 10, 12, 3, 20, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 10, 12, 10, 0, 0, time.UTC), job.NextRun(now))
	assert.Equal(t, sessionExpirerName, job.Name())
}

type fixedSize int

func (f fixedSize) CacheSize() int { return int(f) }

func TestPlaceCacheReporter(t *testing.T) {
	var buf bytes.Buffer
	job := NewPlaceCacheReporter(fixedSize(42), slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, job.Run(context.Background()))
	assert.Contains(t, buf.String(), "entries=42")

	now := time.Date(2026, 1, 10, 12, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC), job.NextRun(now))
}

// flakyJob падает первые failures раз
type flakyJob struct {
	failures int32
	runs     atomic.Int32
	done     chan struct{}
	once     sync.Once
}

func (j *flakyJob) Name() string { return "flaky" }

func (j *flakyJob) NextRun(now time.Time) time.Time { return now.Add(time.Millisecond) }

func (j *flakyJob) Run(context.Context) error {
	n := j.runs.Add(1)
	if n <= j.failures {
		return errors.New("boom")
	}
	j.once.Do(func() { close(j.done) })
	return nil
}

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *recordingAlerter) SendAlert(_ context.Context, message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
	return nil
}

func (a *recordingAlerter) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.messages)
}

func TestScheduler_RetriesUntilSuccess(t *testing.T) {
	alerter := &recordingAlerter{}
	s := NewScheduler(discardLog, alerter)
	s.retries = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

	job := &flakyJob{failures: 2, done: make(chan struct{})}
	s.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	select {
	case <-job.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not succeed")
	}
	cancel()
	s.Wait()

	assert.GreaterOrEqual(t, job.runs.Load(), int32(3))
	assert.Zero(t, alerter.count())
}

func TestScheduler_AlertsAfterAllRetries(t *testing.T) {
	alerter := &recordingAlerter{}
	s := NewScheduler(discardLog, alerter)
	s.retries = []time.Duration{time.Millisecond}

	job := &flakyJob{failures: 1 << 30, done: make(chan struct{})}

	attemptErrors, err := s.runWithRetry(context.Background(), job)
	require.Error(t, err)
	require.Len(t, attemptErrors, 2)

	s.sendAlert(context.Background(), job.Name(), attemptErrors)
	require.Equal(t, 1, alerter.count())
	assert.Contains(t, alerter.messages[0], "Джоба: flaky")
	assert.Contains(t, alerter.messages[0], "Попытка 2: boom")
}

func TestScheduler_StartWithoutJobs(t *testing.T) {
	s := NewScheduler(discardLog, nil)
	assert.Error(t, s.Start(context.Background()))
}

func TestScheduler_StopsDuringRetryPause(t *testing.T) {
	s := NewScheduler(discardLog, nil)
	s.retries = []time.Duration{time.Hour}

	job := &flakyJob{failures: 1 << 30, done: make(chan struct{})}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	attemptErrors, err := s.runWithRetry(ctx, job)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, attemptErrors, 1)
}

func TestSleep(t *testing.T) {
	assert.True(t, sleep(context.Background(), 0))
	assert.True(t, sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleep(ctx, time.Hour))
	assert.False(t, sleep(ctx, 0))
}
