package commands

import (
	"context"
	"time"

	"content-scheduler/internal/infra"
	"content-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound        = errs.New("job not found")
	ErrJobAlreadyFinished = errs.New("job already finished")
	ErrInvalidScheduledAt = errs.New("invalid scheduled time")
)

// JobCommands covers the operator actions on individual jobs. Both act only
// on still-scheduled jobs; terminal jobs are immutable.
type JobCommands interface {
	Reschedule(ctx context.Context, id uuid.UUID, at time.Time) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

type jobUseCaseImpl struct {
	jobRepo JobRepository
}

func NewJobCommands(jobRepo JobRepository) JobCommands {
	return &jobUseCaseImpl{jobRepo: jobRepo}
}

func (uc *jobUseCaseImpl) Reschedule(ctx context.Context, id uuid.UUID, at time.Time) error {
	if at.IsZero() {
		return ErrInvalidScheduledAt
	}

	existing, err := uc.jobRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrJobNotFound
		}
		return errs.Wrap(err, "failed to load job")
	}
	if err := existing.Reschedule(at); err != nil {
		return ErrJobAlreadyFinished
	}

	moved, err := uc.jobRepo.RescheduleIfScheduled(ctx, id, at)
	if err != nil {
		return errs.Wrap(err, "failed to reschedule job")
	}
	if !moved {
		return ErrJobAlreadyFinished
	}
	return nil
}

func (uc *jobUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	existing, err := uc.jobRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrJobNotFound
		}
		return errs.Wrap(err, "failed to load job")
	}
	if err := existing.Cancel(); err != nil {
		return ErrJobAlreadyFinished
	}

	cancelled, err := uc.jobRepo.CancelIfScheduled(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to cancel job")
	}
	if !cancelled {
		return ErrJobAlreadyFinished
	}
	return nil
}
