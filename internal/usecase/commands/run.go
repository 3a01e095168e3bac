package commands

import (
	"context"
	"fmt"
	"log/slog"

	"content-scheduler/internal/domain/job"
	"content-scheduler/internal/pkg/clock"
	"content-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// PassReport summarizes one executor pass. A job that fails is still
// Processed; jobs lost to a concurrent claim are excluded from both
// Succeeded and Failed.
type PassReport struct {
	Processed int
	Succeeded int
	Failed    int
	Errors    []PassError
}

type PassError struct {
	JobID   uuid.UUID
	Kind    job.Kind
	Message string
}

type ExecutorCommands interface {
	RunDue(ctx context.Context) (*PassReport, error)
}

type executorUseCaseImpl struct {
	jobRepo    JobRepository
	content    ContentSource
	recipients RecipientSource
	mailer     Mailer
	clk        clock.Clock
}

func NewExecutorCommands(
	jobRepo JobRepository,
	content ContentSource,
	recipients RecipientSource,
	mailer Mailer,
	clk clock.Clock,
) ExecutorCommands {
	return &executorUseCaseImpl{
		jobRepo:    jobRepo,
		content:    content,
		recipients: recipients,
		mailer:     mailer,
		clk:        clk,
	}
}

// RunDue executes every due job sequentially in scheduled order. A job
// failure is recorded on the job and in the report; it never aborts the
// pass. Store-level failures do abort: if the due set cannot be selected
// or an outcome cannot be written back, the pass stops with no report.
func (uc *executorUseCaseImpl) RunDue(ctx context.Context) (*PassReport, error) {
	now := uc.clk.Now()

	due, err := uc.jobRepo.FindDue(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to select due jobs")
	}

	report := &PassReport{}
	for _, j := range due {
		claimed, runErr := uc.runOne(ctx, j)
		if !claimed {
			// An unclaimed job with an error means the store refused the
			// terminal write, not that the job itself failed.
			if runErr != nil {
				slog.Error("could not record job outcome, aborting pass",
					"job_id", j.ID(), "kind", j.Kind().String(), "error", runErr)
				return nil, errs.Wrap(runErr, "job store failure during executor pass")
			}
			slog.Warn("due job no longer scheduled, skipping",
				"job_id", j.ID(), "kind", j.Kind().String())
			continue
		}
		report.Processed++
		if runErr != nil {
			report.Failed++
			report.Errors = append(report.Errors, PassError{
				JobID:   j.ID(),
				Kind:    j.Kind(),
				Message: runErr.Error(),
			})
			slog.Warn("job execution failed",
				"job_id", j.ID(), "kind", j.Kind().String(), "error", runErr)
			continue
		}
		report.Succeeded++
	}

	slog.Info("executor pass finished",
		"processed", report.Processed,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
	)
	return report, nil
}

// runOne performs the kind-specific work and lands the terminal transition.
// The returned bool is the claim result: false means another actor moved the
// job out of Scheduled first and nothing was done.
func (uc *executorUseCaseImpl) runOne(ctx context.Context, j *job.Job) (bool, error) {
	switch j.Kind() {
	case job.KindBlogPublish:
		return uc.runBlogPublish(ctx, j)
	case job.KindEmailCampaign:
		return uc.runEmailCampaign(ctx, j)
	default:
		return uc.failJob(ctx, j, fmt.Sprintf("unknown job kind: %s", j.Kind()))
	}
}

func (uc *executorUseCaseImpl) runBlogPublish(ctx context.Context, j *job.Job) (bool, error) {
	if err := uc.content.PublishItem(ctx, j.SourceItemID()); err != nil {
		return uc.failJob(ctx, j, err.Error())
	}
	claimed, err := uc.jobRepo.CompleteIfScheduled(ctx, j.ID(), uc.clk.Now())
	if err != nil {
		return false, errs.Wrap(err, "failed to complete job")
	}
	return claimed, nil
}

func (uc *executorUseCaseImpl) runEmailCampaign(ctx context.Context, j *job.Job) (bool, error) {
	campaign, err := uc.content.GetCampaign(ctx, j.SourceItemID())
	if err != nil {
		return uc.failJob(ctx, j, err.Error())
	}
	if campaign.Subject == "" || campaign.Body == "" {
		return uc.failJob(ctx, j, "incomplete campaign data")
	}

	recipients, err := uc.recipients.ActiveRecipients(ctx)
	if err != nil {
		return uc.failJob(ctx, j, err.Error())
	}
	if len(recipients) == 0 {
		return uc.failJob(ctx, j, "no active recipients")
	}

	delivered := uc.deliverBatches(ctx, j, campaign, recipients)
	if delivered == 0 {
		return uc.failJob(ctx, j, "failed to deliver to any recipient")
	}

	if err := uc.content.MarkCampaignDelivered(ctx, j.SourceItemID(), delivered); err != nil {
		return uc.failJob(ctx, j, err.Error())
	}
	claimed, err := uc.jobRepo.CompleteIfScheduled(ctx, j.ID(), uc.clk.Now())
	if err != nil {
		return false, errs.Wrap(err, "failed to complete job")
	}
	return claimed, nil
}

// deliverBatches sends the campaign in provider-capped chunks and returns
// how many recipients were delivered to. A batch failure skips only that
// chunk; the remaining batches are still attempted.
func (uc *executorUseCaseImpl) deliverBatches(ctx context.Context, j *job.Job, campaign *Campaign, recipients []string) int {
	size := uc.mailer.BatchSize()
	if size <= 0 {
		size = 1
	}

	delivered := 0
	for start := 0; start < len(recipients); start += size {
		end := min(start+size, len(recipients))
		batch := recipients[start:end]

		providerID, err := uc.mailer.SendBatch(ctx, batch, campaign.Subject, campaign.Body)
		if err != nil {
			slog.Warn("campaign batch delivery failed",
				"job_id", j.ID(), "batch_start", start, "batch_size", len(batch), "error", err)
			continue
		}
		slog.Debug("campaign batch delivered",
			"job_id", j.ID(), "provider_id", providerID, "batch_size", len(batch))
		delivered += len(batch)
	}
	return delivered
}

func (uc *executorUseCaseImpl) failJob(ctx context.Context, j *job.Job, message string) (bool, error) {
	claimed, err := uc.jobRepo.FailIfScheduled(ctx, j.ID(), uc.clk.Now(), message)
	if err != nil {
		return false, errs.Wrap(err, "failed to record job failure")
	}
	if !claimed {
		return false, nil
	}
	return true, errs.New(message)
}
