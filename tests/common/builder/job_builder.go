//go:build unit || e2e

package builder

import (
	"time"

	domjob "content-scheduler/internal/domain/job"
	"content-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type JobBuilder struct {
	ID           uuid.UUID
	Kind         domjob.Kind
	SourceItemID uuid.UUID
	ScheduledAt  time.Time
	Status       domjob.Status
	Snapshot     domjob.Snapshot
	LastRunAt    *time.Time
	ErrMessage   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewJobBuilder() *JobBuilder {
	now := time.Now()
	return &JobBuilder{
		ID:           uuid.New(),
		Kind:         domjob.KindBlogPublish,
		SourceItemID: uuid.New(),
		ScheduledAt:  now.Add(-time.Minute),
		Status:       domjob.StatusScheduled,
		Snapshot:     domjob.NewBlogSnapshot("Launch announcement", "launch-announcement"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *JobBuilder) With(mutate func(*JobBuilder)) *JobBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *JobBuilder) BuildDomain() (*domjob.Job, error) {
	return domjob.NewJob(b.Kind, b.SourceItemID, b.ScheduledAt, b.Snapshot)
}

func (b *JobBuilder) BuildReconstructed() *domjob.Job {
	return domjob.ReconstructJob(
		b.ID,
		b.Kind,
		b.SourceItemID,
		b.ScheduledAt,
		b.Status,
		b.Snapshot,
		b.LastRunAt,
		b.ErrMessage,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *JobBuilder) BuildView() *queries.JobView {
	return &queries.JobView{
		ID:           b.ID,
		Kind:         b.Kind.String(),
		SourceItemID: b.SourceItemID,
		Status:       b.Status.String(),
		ScheduledAt:  b.ScheduledAt,
		Snapshot: queries.SnapshotView{
			Title:   b.Snapshot.Title,
			Slug:    b.Snapshot.Slug,
			Subject: b.Snapshot.Subject,
		},
		LastRunAt:  b.LastRunAt,
		ErrMessage: b.ErrMessage,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *JobBuilder) WithID(id uuid.UUID) *JobBuilder {
	b.ID = id
	return b
}

func (b *JobBuilder) WithKind(kind domjob.Kind) *JobBuilder {
	b.Kind = kind
	return b
}

func (b *JobBuilder) WithSourceItemID(id uuid.UUID) *JobBuilder {
	b.SourceItemID = id
	return b
}

func (b *JobBuilder) WithScheduledAt(at time.Time) *JobBuilder {
	b.ScheduledAt = at
	return b
}

func (b *JobBuilder) WithStatus(status domjob.Status) *JobBuilder {
	b.Status = status
	return b
}

func (b *JobBuilder) WithSnapshot(snapshot domjob.Snapshot) *JobBuilder {
	b.Snapshot = snapshot
	return b
}

func (b *JobBuilder) AsCampaign() *JobBuilder {
	b.Kind = domjob.KindEmailCampaign
	b.Snapshot = domjob.NewCampaignSnapshot("Weekly digest")
	return b
}

func (b *JobBuilder) AsCompleted(ranAt time.Time) *JobBuilder {
	b.Status = domjob.StatusCompleted
	b.LastRunAt = &ranAt
	return b
}

func (b *JobBuilder) AsFailed(ranAt time.Time, message string) *JobBuilder {
	b.Status = domjob.StatusFailed
	b.LastRunAt = &ranAt
	b.ErrMessage = &message
	return b
}

func (b *JobBuilder) AsCancelled() *JobBuilder {
	b.Status = domjob.StatusCancelled
	return b
}
