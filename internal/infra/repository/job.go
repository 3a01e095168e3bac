package repository

import (
	"context"
	"encoding/json"
	"time"

	"content-scheduler/internal/domain/job"
	"content-scheduler/internal/infra"
	"content-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, kind, source_item_id, scheduled_at, status, snapshot, last_run_at, error, created_at, updated_at`

type JobRepository struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// snapshotDoc is the stored shape of job.Snapshot.
type snapshotDoc struct {
	Title   string `json:"title,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Subject string `json:"subject,omitempty"`
}

func (r *JobRepository) Create(ctx context.Context, j *job.Job) (uuid.UUID, error) {
	snap, err := json.Marshal(snapshotDoc{
		Title:   j.Snapshot().Title,
		Slug:    j.Snapshot().Slug,
		Subject: j.Snapshot().Subject,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode job snapshot", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO jobs (id, kind, source_item_id, scheduled_at, status, snapshot)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		j.ID(), j.Kind().String(), j.SourceItemID(), j.ScheduledAt(), j.Status().String(), snap,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create job", err)
	}
	return j.ID(), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job by ID", err)
	}
	return j, nil
}

func (r *JobRepository) ListByKind(ctx context.Context, kind job.Kind) ([]*job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE kind = $1`, kind.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs by kind", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// FindDue returns scheduled jobs whose target time has passed, oldest first.
// The secondary id ordering keeps iteration deterministic when several jobs
// share a scheduled_at.
func (r *JobRepository) FindDue(ctx context.Context, now time.Time) ([]*job.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+`
		  FROM jobs
		 WHERE status = 'scheduled' AND scheduled_at <= $1
		 ORDER BY scheduled_at ASC, id ASC`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// CompleteIfScheduled is a status-guarded terminal transition. A false return
// means the job was no longer scheduled — claimed by a concurrent pass or
// cancelled — and the caller must skip it rather than treat it as an error.
func (r *JobRepository) CompleteIfScheduled(ctx context.Context, id uuid.UUID, ranAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		   SET status = 'completed', last_run_at = $2, error = NULL, updated_at = now()
		 WHERE id = $1 AND status = 'scheduled'`, id, ranAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete job", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *JobRepository) FailIfScheduled(ctx context.Context, id uuid.UUID, ranAt time.Time, message string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		   SET status = 'failed', last_run_at = $2, error = $3, updated_at = now()
		 WHERE id = $1 AND status = 'scheduled'`, id, ranAt, message)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark job failed", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *JobRepository) CancelIfScheduled(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		   SET status = 'cancelled', updated_at = now()
		 WHERE id = $1 AND status = 'scheduled'`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel job", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *JobRepository) RescheduleIfScheduled(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		   SET scheduled_at = $2, updated_at = now()
		 WHERE id = $1 AND status = 'scheduled'`, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reschedule job", err)
	}
	return tag.RowsAffected() > 0, nil
}

func collectJobs(rows pgx.Rows) ([]*job.Job, error) {
	var result []*job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan job row", err)
		}
		result = append(result, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate job rows", err)
	}
	return result, nil
}

func scanJob(row pgx.Row) (*job.Job, error) {
	var (
		id           uuid.UUID
		kind         string
		sourceItemID uuid.UUID
		scheduledAt  time.Time
		status       string
		snapRaw      []byte
		lastRunAt    pgtype.Timestamptz
		errMessage   pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &kind, &sourceItemID, &scheduledAt, &status, &snapRaw, &lastRunAt, &errMessage, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var doc snapshotDoc
	if len(snapRaw) > 0 {
		if err := json.Unmarshal(snapRaw, &doc); err != nil {
			return nil, err
		}
	}

	return job.ReconstructJob(
		id,
		job.Kind(kind),
		sourceItemID,
		scheduledAt,
		job.Status(status),
		job.Snapshot{Title: doc.Title, Slug: doc.Slug, Subject: doc.Subject},
		pgconv.TimePtrFromPgtype(lastRunAt),
		pgconv.StringPtrFromPgtype(errMessage),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
