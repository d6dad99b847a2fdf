package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/ports/jobs"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

// defaultRetries паузы перед повторами: 1m, 10m, 30m
var defaultRetries = []time.Duration{
	1 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
}

// Scheduler запускает периодические джобы, каждую в своей горутине
type Scheduler struct {
	jobs           []jobs.Job
	alerterService service.IAlerterService
	retries        []time.Duration
	log            *slog.Logger
	wg             sync.WaitGroup
}

func NewScheduler(log *slog.Logger, alerterService service.IAlerterService) *Scheduler {
	return &Scheduler{
		alerterService: alerterService,
		retries:        defaultRetries,
		log:            log,
	}
}

// Register регистрировать джобы нужно до Start
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start не блокирует. Джобы останавливаются по отмене ctx, Wait дожидается их выхода.
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		return errors.New("no jobs registered")
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	for _, job := range s.jobs {
		job := job
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.loop(ctx, job)
		}()
	}

	return nil
}

func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job jobs.Job) {
	name := job.Name()

	for {
		now := time.Now()
		if !sleep(ctx, job.NextRun(now).Sub(now)) {
			s.log.Info("job stopped by context", "job_name", name)
			return
		}

		attemptErrors, err := s.runWithRetry(ctx, job)
		switch {
		case err == nil:
			s.log.Debug("job executed successfully", "job_name", name)
		case ctx.Err() != nil:
			s.log.Info("job stopped by context", "job_name", name)
			return
		default:
			s.log.Error("job failed after all retries",
				"job_name", name,
				"error", err,
				"attempt_errors", formatAttemptErrors(attemptErrors),
			)
			s.sendAlert(ctx, name, attemptErrors)
		}
	}
}

// attemptError ошибка конкретной попытки запуска
type attemptError struct {
	attempt int
	err     error
}

// runWithRetry первая попытка сразу, дальше по паузам из s.retries
func (s *Scheduler) runWithRetry(ctx context.Context, job jobs.Job) ([]attemptError, error) {
	delays := append([]time.Duration{0}, s.retries...)
	var attemptErrors []attemptError

	for i, delay := range delays {
		if !sleep(ctx, delay) {
			return attemptErrors, ctx.Err()
		}

		err := job.Run(ctx)
		if err == nil {
			return nil, nil
		}

		attemptErrors = append(attemptErrors, attemptError{attempt: i + 1, err: err})
		s.log.Warn("job attempt failed",
			"job_name", job.Name(),
			"attempt", i+1,
			"retries_remaining", len(delays)-i-1,
			"error", err,
		)
	}

	return attemptErrors, fmt.Errorf("all %d attempts failed", len(delays))
}

// sleep false, если ctx отменён раньше, чем прошла пауза
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Scheduler) sendAlert(ctx context.Context, jobName string, attemptErrors []attemptError) {
	if s.alerterService == nil {
		return
	}

	var message strings.Builder
	message.WriteString("⚠️ Финальная ошибка планировщика, ретраи исчерпаны\n\n")
	fmt.Fprintf(&message, "Джоба: %s\n\n", jobName)
	message.WriteString("Ошибки попыток:\n")
	message.WriteString(formatAttemptErrors(attemptErrors))

	if err := s.alerterService.SendAlert(ctx, message.String()); err != nil {
		s.log.Warn("failed to send job failure alert", "job_name", jobName, "error", err)
	}
}

func formatAttemptErrors(attemptErrors []attemptError) string {
	lines := make([]string, 0, len(attemptErrors))
	for _, a := range attemptErrors {
		lines = append(lines, fmt.Sprintf("Попытка %d: %s", a.attempt, a.err))
	}
	return strings.Join(lines, "\n")
}
