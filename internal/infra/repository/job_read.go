package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"content-scheduler/internal/infra"
	"content-scheduler/internal/pkg/pgconv"
	"content-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobReadStore serves the listing surface. It returns views directly instead
// of rehydrating entities; reads never transition jobs.
type JobReadStore struct {
	db *pgxpool.Pool
}

func NewJobReadStore(db *pgxpool.Pool) *JobReadStore {
	return &JobReadStore{db: db}
}

func (s *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	view, err := scanJobView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job view by ID", err)
	}
	return view, nil
}

func (s *JobReadStore) ListFirstPage(ctx context.Context, filters queries.JobFilters, limit int32) ([]*queries.JobView, error) {
	where, args := buildJobFilter(filters, nil)
	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT %s FROM jobs
		%s
		ORDER BY scheduled_at ASC, id ASC
		LIMIT $%d`, jobColumns, where, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs", err)
	}
	defer rows.Close()
	return collectJobViews(rows)
}

func (s *JobReadStore) ListKeyset(ctx context.Context, filters queries.JobFilters, lastScheduledAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.JobView, error) {
	where, args := buildJobFilter(filters, func(args []any) (string, []any) {
		args = append(args, lastScheduledAt, lastID)
		cond := fmt.Sprintf("(scheduled_at, id) > ($%d, $%d)", len(args)-1, len(args))
		return cond, args
	})
	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT %s FROM jobs
		%s
		ORDER BY scheduled_at ASC, id ASC
		LIMIT $%d`, jobColumns, where, len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs after cursor", err)
	}
	defer rows.Close()
	return collectJobViews(rows)
}

// buildJobFilter assembles the WHERE clause from the optional filters plus an
// optional extra condition (the keyset bound). Conditions are always bound as
// positional args.
func buildJobFilter(filters queries.JobFilters, extra func([]any) (string, []any)) (string, []any) {
	var conds []string
	var args []any
	if filters.Status != nil {
		args = append(args, filters.Status.String())
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.Kind != nil {
		args = append(args, filters.Kind.String())
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if extra != nil {
		var cond string
		cond, args = extra(args)
		conds = append(conds, cond)
	}
	if len(conds) == 0 {
		return "", args
	}
	where := "WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

func collectJobViews(rows pgx.Rows) ([]*queries.JobView, error) {
	var result []*queries.JobView
	for rows.Next() {
		view, err := scanJobView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan job view row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate job view rows", err)
	}
	return result, nil
}

func scanJobView(row pgx.Row) (*queries.JobView, error) {
	var (
		view       queries.JobView
		snapRaw    []byte
		lastRunAt  pgtype.Timestamptz
		errMessage pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.Kind, &view.SourceItemID, &view.ScheduledAt, &view.Status,
		&snapRaw, &lastRunAt, &errMessage, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	if len(snapRaw) > 0 {
		if err := json.Unmarshal(snapRaw, &view.Snapshot); err != nil {
			return nil, err
		}
	}
	view.LastRunAt = pgconv.TimePtrFromPgtype(lastRunAt)
	view.ErrMessage = pgconv.StringPtrFromPgtype(errMessage)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
