package scheduler

import (
	"context"
	"log"
	"os"

	"github.com/robfig/cron/v3"
)

const (
	defaultBlockPassSchedule     = "*/30 6-17 * * *"
	defaultUnblockPassSchedule   = "*/15 * * * *"
	defaultReminderSweepSchedule = "0 9 * * *"
)

// Scheduler runs the collection passes on cron schedules. Each schedule can
// be overridden by environment variable, which is how staging slows the
// passes down without a deploy.
type Scheduler struct {
	cron *cron.Cron
	jobs *Jobs
}

func NewScheduler(jobs *Jobs) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(log.Default())))),
		jobs: jobs,
	}
}

func (s *Scheduler) Start() error {
	entries := []struct {
		name     string
		envVar   string
		fallback string
		run      func()
	}{
		{"block_pass", "BLOCK_PASS_SCHEDULE", defaultBlockPassSchedule, s.jobs.RunBlockPass},
		{"unblock_pass", "UNBLOCK_PASS_SCHEDULE", defaultUnblockPassSchedule, s.jobs.RunUnblockPass},
		{"reminder_sweep", "REMINDER_SWEEP_SCHEDULE", defaultReminderSweepSchedule, s.jobs.RunReminderSweep},
	}

	for _, e := range entries {
		spec := getenvDefault(e.envVar, e.fallback)
		if _, err := s.cron.AddFunc(spec, e.run); err != nil {
			log.Printf("[scheduler][cron] invalid schedule job=%s spec=%q err=%v", e.name, spec, err)
			return err
		}
		log.Printf("[scheduler][cron] job registered job=%s spec=%q", e.name, spec)
	}

	s.cron.Start()
	log.Printf("[scheduler][cron] scheduler started")
	return nil
}

// Stop halts new job runs and returns a context that is done once the
// in-flight jobs finish.
func (s *Scheduler) Stop() context.Context {
	log.Printf("[scheduler][cron] scheduler stopping")
	return s.cron.Stop()
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
