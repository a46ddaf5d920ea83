package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Checker polls one service and reports when there is nothing left to watch.
type Checker interface {
	Check(ctx context.Context, uid string) (finished bool, err error)
}

// Scheduler runs a Checker for a service at a fixed interval until the
// service finishes, the context is cancelled or Stop is called.
type Scheduler struct {
	checker  Checker
	uid      string
	interval time.Duration
	logger   *logrus.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
	wg       sync.WaitGroup
}

func NewScheduler(checker Checker, uid string, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		checker:  checker,
		uid:      uid,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Done is closed when the scheduler has stopped for any reason.
func (s *Scheduler) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.tick(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped: context cancelled")
			return
		case <-s.stopCh:
			s.logger.Info("scheduler stopped: stop signal received")
			return
		case <-ticker.C:
			if s.tick(ctx) {
				return
			}
		}
	}
}

// tick runs one check and reports whether watching is over.
func (s *Scheduler) tick(ctx context.Context) bool {
	s.logger.WithField("service", s.uid).Debug("checking service")

	finished, err := s.checker.Check(ctx, s.uid)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": s.uid,
			"error":   err,
		}).Error("check failed")
	}

	if finished {
		s.logger.WithField("service", s.uid).Info("service reached its destination")
	}
	return finished
}
