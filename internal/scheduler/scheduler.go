package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"

	"salesreport/internal/logger"
)

// Scheduler runs the report job once per day at a configured local time
type Scheduler struct {
	spec string
	cron *cron.Cron
	log  *logger.Logger
}

// New creates a scheduler firing daily at timeOfDay ("HH:MM", 24-hour)
func New(timeOfDay string) (*Scheduler, error) {
	hour, minute, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		spec: fmt.Sprintf("%d %d * * *", minute, hour),
		cron: cron.New(),
		log:  logger.WithComponent("SCHEDULER"),
	}, nil
}

// Spec returns the cron expression the scheduler runs on
func (s *Scheduler) Spec() string {
	return s.spec
}

// Run registers job and blocks until ctx is cancelled. Job panics are
// recovered by the cron runner so one failed run does not stop the schedule.
func (s *Scheduler) Run(ctx context.Context, job func()) error {
	if _, err := s.cron.AddFunc(s.spec, job); err != nil {
		return fmt.Errorf("registering schedule %q: %w", s.spec, err)
	}

	s.log.Info("Scheduler started", map[string]interface{}{"spec": s.spec})
	s.cron.Start()

	<-ctx.Done()

	s.log.Info("Scheduler stopping")
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	return ctx.Err()
}

// parseTimeOfDay validates an "HH:MM" clock time
func parseTimeOfDay(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: want HH:MM", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid schedule hour %q", parts[0])
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule minute %q", parts[1])
	}

	return hour, minute, nil
}
