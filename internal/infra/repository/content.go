package repository

import (
	"context"

	"content-scheduler/internal/infra"
	"content-scheduler/internal/pkg/pgconv"
	"content-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentStore reads externally-owned content items (posts, campaigns) and
// applies the two side effects the engine is allowed to perform on them.
// Everything else about content items belongs to the editing surface, not
// to the scheduler.
type ContentStore struct {
	db *pgxpool.Pool
}

func NewContentStore(db *pgxpool.Pool) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) ListScheduledPosts(ctx context.Context) ([]commands.PostItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, slug, scheduled_at
		  FROM posts
		 WHERE status = 'scheduled' AND scheduled_at IS NOT NULL`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled posts", err)
	}
	defer rows.Close()

	var items []commands.PostItem
	for rows.Next() {
		var (
			item        commands.PostItem
			scheduledAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Slug, &scheduledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan post row", err)
		}
		item.ScheduledAt = pgconv.TimePtrFromPgtype(scheduledAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate post rows", err)
	}
	return items, nil
}

func (s *ContentStore) ListScheduledCampaigns(ctx context.Context) ([]commands.CampaignItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, COALESCE(subject, ''), scheduled_at
		  FROM email_campaigns
		 WHERE status = 'scheduled' AND scheduled_at IS NOT NULL`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled campaigns", err)
	}
	defer rows.Close()

	var items []commands.CampaignItem
	for rows.Next() {
		var (
			item        commands.CampaignItem
			scheduledAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Subject, &scheduledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign row", err)
		}
		item.ScheduledAt = pgconv.TimePtrFromPgtype(scheduledAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaign rows", err)
	}
	return items, nil
}

func (s *ContentStore) PublishItem(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE posts
		   SET status = 'published', published_at = now(), updated_at = now()
		 WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to publish post", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("post not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *ContentStore) GetCampaign(ctx context.Context, id uuid.UUID) (*commands.Campaign, error) {
	var subject, body pgtype.Text
	err := s.db.QueryRow(ctx, `SELECT subject, body FROM email_campaigns WHERE id = $1`, id).
		Scan(&subject, &body)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get campaign", err)
	}
	return &commands.Campaign{Subject: subject.String, Body: body.String}, nil
}

func (s *ContentStore) MarkCampaignDelivered(ctx context.Context, id uuid.UUID, recipientCount int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE email_campaigns
		   SET status = 'sent', sent_at = now(), recipient_count = $2, updated_at = now()
		 WHERE id = $1`, id, recipientCount)
	if err != nil {
		return infra.WrapRepoErr("failed to mark campaign delivered", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)
	}
	return nil
}
