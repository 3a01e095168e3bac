//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateScheduledPost(t *testing.T, db DBLike, title, slug string, scheduledAt time.Time) uuid.UUID {
	t.Helper()

	postID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO posts (id, title, slug, body, status, scheduled_at)
		VALUES ($1, $2, $3, 'body', 'scheduled', $4)`,
		postID, title, slug, scheduledAt)
	require.NoError(t, err)

	return postID
}

func CreateScheduledCampaign(t *testing.T, db DBLike, subject, body string, scheduledAt time.Time) uuid.UUID {
	t.Helper()

	campaignID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO email_campaigns (id, subject, body, status, scheduled_at)
		VALUES ($1, $2, $3, 'scheduled', $4)`,
		campaignID, subject, body, scheduledAt)
	require.NoError(t, err)

	return campaignID
}

func CreateSubscriber(t *testing.T, db DBLike, email, status string) uuid.UUID {
	t.Helper()

	subscriberID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO subscribers (id, email, status)
		VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		subscriberID, email, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM subscribers WHERE email = $1", email).Scan(&subscriberID)
	}

	return subscriberID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO subscribers (id, email, status) VALUES
		    (gen_random_uuid(), 'alice@example.com', 'active'),
		    (gen_random_uuid(), 'bob@example.com', 'active'),
		    (gen_random_uuid(), 'gone@example.com', 'unsubscribed')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
