package queries

import (
	"context"
	"time"

	"content-scheduler/internal/domain/job"
	"content-scheduler/internal/infra"
	"content-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound   = errs.New("job not found")
	ErrInvalidCursor = errs.New("invalid cursor")
)

// SnapshotView is the content captured at scheduling time, as stored on the
// job. Fields irrelevant to the job's kind are omitted.
type SnapshotView struct {
	Title   string `json:"title,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// JobView represents read-optimized job data
type JobView struct {
	ID           uuid.UUID    `json:"id"`
	Kind         string       `json:"kind"`
	SourceItemID uuid.UUID    `json:"source_item_id"`
	Status       string       `json:"status"`
	ScheduledAt  time.Time    `json:"scheduled_at"`
	Snapshot     SnapshotView `json:"snapshot"`
	LastRunAt    *time.Time   `json:"last_run_at,omitempty"`
	ErrMessage   *string      `json:"error_message,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type JobFilters struct {
	Status *job.Status
	Kind   *job.Kind
}

type JobReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	ListFirstPage(ctx context.Context, filters JobFilters, limit int32) ([]*JobView, error)
	ListKeyset(ctx context.Context, filters JobFilters, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*JobView, error)
}

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	List(ctx context.Context, filters JobFilters, cursor *Cursor, limit int) ([]*JobView, *Cursor, error)
}

type jobQueriesImpl struct {
	repo JobReadStore
}

func NewJobQueries(repo JobReadStore) JobQueries {
	return &jobQueriesImpl{repo: repo}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*JobView, error) {
	jv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return jv, nil
}

// List pages through jobs in scheduled order using a keyset cursor, so the
// page boundaries stay stable while the executor moves jobs around.
func (q *jobQueriesImpl) List(ctx context.Context, filters JobFilters, cursor *Cursor, limit int) ([]*JobView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*JobView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastScheduledAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListKeyset(ctx, filters, lastScheduledAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ScheduledAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
