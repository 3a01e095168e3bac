package repository

import (
	"context"

	"content-scheduler/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriberStore struct {
	db *pgxpool.Pool
}

func NewSubscriberStore(db *pgxpool.Pool) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// ActiveRecipients returns the addresses a campaign may be delivered to.
// Unsubscribed and bounced addresses are excluded at the source.
func (s *SubscriberStore) ActiveRecipients(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT email FROM subscribers WHERE status = 'active' ORDER BY created_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active subscribers", err)
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscriber row", err)
		}
		addresses = append(addresses, email)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscriber rows", err)
	}
	return addresses, nil
}
