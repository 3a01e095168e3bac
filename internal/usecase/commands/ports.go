package commands

import (
	"context"
	"time"

	"content-scheduler/internal/domain/job"

	"github.com/google/uuid"
)

// JobRepository is the durable store for job records. Terminal transitions
// are status-guarded: the bool result reports whether the row was still
// scheduled when the update landed.
type JobRepository interface {
	Create(ctx context.Context, j *job.Job) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*job.Job, error)
	ListByKind(ctx context.Context, kind job.Kind) ([]*job.Job, error)
	FindDue(ctx context.Context, now time.Time) ([]*job.Job, error)
	CompleteIfScheduled(ctx context.Context, id uuid.UUID, ranAt time.Time) (bool, error)
	FailIfScheduled(ctx context.Context, id uuid.UUID, ranAt time.Time, message string) (bool, error)
	CancelIfScheduled(ctx context.Context, id uuid.UUID) (bool, error)
	RescheduleIfScheduled(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// PostItem is a blog post eligible for scheduling, as seen by the engine.
type PostItem struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	ScheduledAt *time.Time
}

// CampaignItem is an email campaign eligible for scheduling.
type CampaignItem struct {
	ID          uuid.UUID
	Subject     string
	ScheduledAt *time.Time
}

// Campaign is the sendable content of a campaign at execution time.
type Campaign struct {
	Subject string
	Body    string
}

// ContentSource exposes the read and transition operations the engine needs
// on externally-owned content items. Everything else about those items is
// out of scope here.
type ContentSource interface {
	ListScheduledPosts(ctx context.Context) ([]PostItem, error)
	ListScheduledCampaigns(ctx context.Context) ([]CampaignItem, error)
	PublishItem(ctx context.Context, id uuid.UUID) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*Campaign, error)
	MarkCampaignDelivered(ctx context.Context, id uuid.UUID, recipientCount int) error
}

type RecipientSource interface {
	ActiveRecipients(ctx context.Context) ([]string, error)
}

// Mailer sends one bounded batch of recipients per call.
type Mailer interface {
	SendBatch(ctx context.Context, to []string, subject, body string) (string, error)
	BatchSize() int
}
