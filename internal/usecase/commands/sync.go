package commands

import (
	"context"
	"log/slog"
	"time"

	"content-scheduler/internal/domain/job"
	"content-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// SyncReport is the outcome of one sync pass. Per-item errors are data, not
// failures of the pass itself.
type SyncReport struct {
	CreatedPosts     int
	CreatedCampaigns int
	Errors           []SyncError
}

type SyncError struct {
	ItemID  uuid.UUID
	Message string
}

type SyncCommands interface {
	Sync(ctx context.Context) (*SyncReport, error)
}

type syncUseCaseImpl struct {
	jobRepo JobRepository
	content ContentSource
}

func NewSyncCommands(jobRepo JobRepository, content ContentSource) SyncCommands {
	return &syncUseCaseImpl{jobRepo: jobRepo, content: content}
}

// Sync mirrors eligible content items into job records. It is idempotent:
// an item already backed by a job of the same kind is skipped, so calling it
// twice in a row creates nothing on the second pass. Per-item failures are
// collected and never abort the remaining items; only a store-level listing
// failure aborts the pass.
func (uc *syncUseCaseImpl) Sync(ctx context.Context) (*SyncReport, error) {
	report := &SyncReport{}

	posts, err := uc.content.ListScheduledPosts(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list scheduled posts")
	}
	existingPosts, err := uc.existingSourceIDs(ctx, job.KindBlogPublish)
	if err != nil {
		return nil, err
	}
	for _, item := range posts {
		if item.ScheduledAt == nil {
			continue
		}
		if _, ok := existingPosts[item.ID]; ok {
			continue
		}
		if err := uc.createJob(ctx, job.KindBlogPublish, item.ID, *item.ScheduledAt, job.NewBlogSnapshot(item.Title, item.Slug)); err != nil {
			slog.Warn("failed to sync post into job", "item_id", item.ID, "error", err)
			report.Errors = append(report.Errors, SyncError{ItemID: item.ID, Message: err.Error()})
			continue
		}
		report.CreatedPosts++
	}

	campaigns, err := uc.content.ListScheduledCampaigns(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list scheduled campaigns")
	}
	existingCampaigns, err := uc.existingSourceIDs(ctx, job.KindEmailCampaign)
	if err != nil {
		return nil, err
	}
	for _, item := range campaigns {
		if item.ScheduledAt == nil {
			continue
		}
		if _, ok := existingCampaigns[item.ID]; ok {
			continue
		}
		if err := uc.createJob(ctx, job.KindEmailCampaign, item.ID, *item.ScheduledAt, job.NewCampaignSnapshot(item.Subject)); err != nil {
			slog.Warn("failed to sync campaign into job", "item_id", item.ID, "error", err)
			report.Errors = append(report.Errors, SyncError{ItemID: item.ID, Message: err.Error()})
			continue
		}
		report.CreatedCampaigns++
	}

	return report, nil
}

// existingSourceIDs scans the jobs of one kind and indexes them by source
// item. The dedup invariant (one job per kind+item) is enforced here at
// creation time, not by the store.
func (uc *syncUseCaseImpl) existingSourceIDs(ctx context.Context, kind job.Kind) (map[uuid.UUID]struct{}, error) {
	jobs, err := uc.jobRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list existing jobs")
	}
	ids := make(map[uuid.UUID]struct{}, len(jobs))
	for _, j := range jobs {
		ids[j.SourceItemID()] = struct{}{}
	}
	return ids, nil
}

func (uc *syncUseCaseImpl) createJob(ctx context.Context, kind job.Kind, itemID uuid.UUID, at time.Time, snapshot job.Snapshot) error {
	j, err := job.NewJob(kind, itemID, at, snapshot)
	if err != nil {
		return err
	}
	_, err = uc.jobRepo.Create(ctx, j)
	return err
}
