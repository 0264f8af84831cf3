package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/api"
	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/logging"
	"github.com/linesmerrill/emergency-dashboard/models"
)

// UnreadEvent is the websocket event carrying the unread notification count
const UnreadEvent = "unread_notifications"

// SweepInterval is how often idle login rate limiters are dropped
const SweepInterval = 10 * time.Minute

// SessionState is the part of the session the poll looks at
type SessionState interface {
	Authenticated() bool
	Expire(ctx context.Context)
}

// UnreadSource reads the unread notifications
type UnreadSource interface {
	Unread(ctx context.Context) (models.UnreadNotifications, error)
}

// Broadcaster pushes events to the open dashboard pages
type Broadcaster interface {
	Broadcast(event string, data interface{}) int
	Clients() int
}

// Sweeper drops stale state on a timer
type Sweeper interface {
	Sweep()
}

// Scheduler handles the periodic background jobs of the dashboard
type Scheduler struct {
	cron     *cron.Cron
	log      *zap.SugaredLogger
	interval time.Duration

	Session SessionState
	Unread  UnreadSource
	Hub     Broadcaster
	Limiter Sweeper
}

// NewScheduler creates a new scheduler instance polling every interval
func NewScheduler(interval time.Duration, sess SessionState, unread UnreadSource, hub Broadcaster, limiter Sweeper) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		log:      logging.New("scheduler"),
		interval: interval,
		Session:  sess,
		Unread:   unread,
		Hub:      hub,
		Limiter:  limiter,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	if s.interval > 0 {
		if _, err := s.cron.AddFunc("@every "+s.interval.String(), s.PollUnread); err != nil {
			s.log.Errorw("failed to register unread poll job", "error", err)
		}
	}
	if s.Limiter != nil {
		if _, err := s.cron.AddFunc("@every "+SweepInterval.String(), s.Limiter.Sweep); err != nil {
			s.log.Errorw("failed to register rate limiter sweep job", "error", err)
		}
	}

	s.cron.Start()
	s.log.Infow("scheduler started", "poll_interval", s.interval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// PollUnread reads the unread count and pushes it to the open pages. It does
// nothing while signed out or when no page is listening.
func (s *Scheduler) PollUnread() {
	if !s.Session.Authenticated() {
		return
	}
	if s.Hub.Clients() == 0 {
		s.log.Debug("no dashboard pages connected, skipping unread poll")
		return
	}

	ctx, cancel := api.WithPollTimeout(context.Background())
	defer cancel()

	unread, err := s.Unread.Unread(ctx)
	if err != nil {
		if apiErr, ok := gateway.AsAPIError(err); ok && apiErr.Unauthorized() {
			s.log.Warn("API rejected the session token during unread poll")
			s.Session.Expire(ctx)
			s.Hub.Broadcast(UnreadEvent, map[string]interface{}{"count": 0, "expired": true})
			return
		}
		s.log.Errorw("failed to poll unread notifications", "error", err)
		return
	}

	sent := s.Hub.Broadcast(UnreadEvent, map[string]interface{}{"count": unread.Count})
	s.log.Debugw("unread count pushed", "count", unread.Count, "pages", sent)
}
