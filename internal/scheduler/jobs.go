package scheduler

import (
	"context"
	"log"
	"time"

	"frota_cobranca/internal/usecase"
)

const jobTimeout = 10 * time.Minute

// Jobs bundles the batch entry points the cron scheduler drives. It depends
// only on the narrow use case interfaces so the wiring stays testable.
type Jobs struct {
	blocker   usecase.IBlockDecisionUseCase
	unblocker usecase.IUnblockUseCase
	escalator usecase.INotificationEscalator
}

func NewJobs(blocker usecase.IBlockDecisionUseCase, unblocker usecase.IUnblockUseCase, escalator usecase.INotificationEscalator) *Jobs {
	return &Jobs{blocker: blocker, unblocker: unblocker, escalator: escalator}
}

func (j *Jobs) RunBlockPass() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := j.blocker.RunBlockPass(ctx)
	if err != nil {
		log.Printf("[scheduler][job] block pass failed err=%v", err)
		return
	}
	log.Printf("[scheduler][job] block pass finished run_id=%s blocked=%d failures=%d", report.RunID, report.Blocked, len(report.Failures))
}

func (j *Jobs) RunUnblockPass() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := j.unblocker.RunUnblockPass(ctx)
	if err != nil {
		log.Printf("[scheduler][job] unblock pass failed err=%v", err)
		return
	}
	log.Printf("[scheduler][job] unblock pass finished run_id=%s unblocked=%d failures=%d", report.RunID, report.Unblocked, len(report.Failures))
}

func (j *Jobs) RunReminderSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, err := j.escalator.RunReminderSweep(ctx)
	if err != nil {
		log.Printf("[scheduler][job] reminder sweep failed err=%v", err)
		return
	}
	log.Printf("[scheduler][job] reminder sweep finished run_id=%s notified=%d failures=%d", report.RunID, report.Notified, len(report.Failures))
}
