package service

import (
	"context"
	"sync"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

const tickInterval = time.Minute

// scheduler polls once per minute and fires the daily report send when the
// gate opens. It is bound to a single organization at construction; there is
// no ambient organization lookup.
type scheduler struct {
	orgID        string
	notification *notificationService
	dm           contract.DataManager
	log          *logrus.Logger

	interval time.Duration
	now      func() time.Time

	stopChan chan struct{}
	running  bool

	mu                sync.Mutex
	inFlight          bool
	lastAttemptBucket string // wall-clock minute of the previous send attempt
}

func newScheduler(orgID string, notification *notificationService, dm contract.DataManager, log *logrus.Logger) *scheduler {
	return &scheduler{
		orgID:        orgID,
		notification: notification,
		dm:           dm,
		log:          log,
		interval:     tickInterval,
		now:          time.Now,
		stopChan:     make(chan struct{}),
		running:      false,
	}
}

// Start launches the polling loop with one immediate tick.
func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.WithField("org_id", s.orgID).Info("Scheduler starting...")
	go s.mainLoop()
}

// Stop cancels future ticks. An in-flight send runs to completion.
func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.WithField("org_id", s.orgID).Info("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	s.runTick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runTick()
		case <-s.stopChan:
			return
		}
	}
}

// runTick guards a tick with the in-flight flag: a tick arriving while a
// previous send is still running is skipped entirely, not queued.
func (s *scheduler) runTick() {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		s.log.WithField("org_id", s.orgID).Debug("Previous tick still in flight, skipping")
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if err := s.tick(context.Background(), s.now()); err != nil {
		s.log.WithField("org_id", s.orgID).Errorf("Scheduler tick failed: %v", err)
	}
}

// tick runs one evaluation at the given wall-clock time. Errors are returned
// for logging only; the loop keeps ticking regardless.
func (s *scheduler) tick(ctx context.Context, now time.Time) error {
	if s.orgID == "" {
		return nil
	}

	settings, err := s.notification.GetSettings(ctx, s.orgID)
	if err != nil {
		return err
	}

	if !settings.Enabled {
		return nil
	}
	if settings.Credential == "" || settings.Destination == "" || len(settings.Recipients) == 0 {
		s.log.WithField("org_id", s.orgID).Debug("Notification settings incomplete, skipping tick")
		return nil
	}

	if !ShouldSend(settings.ScheduledTime, settings.LastSentDate, now) {
		return nil
	}

	// Independent of the daily gate: never attempt twice inside the same
	// wall-clock minute, even when ticks jitter.
	bucket := now.Format(domain.DateLayout + " " + domain.ClockLayout)
	if bucket == s.lastAttemptBucket {
		return nil
	}
	s.lastAttemptBucket = bucket

	if err := s.notification.deliver(ctx, settings, settings.Recipients, now); err != nil {
		// Day marker stays untouched so the next minute retries.
		return err
	}

	date := now.Format(domain.DateLayout)
	if err := s.dm.Settings().MarkSent(s.orgID, date, now.Format(domain.DateTimeLayout)); err != nil {
		return err
	}

	return nil
}
