package history

import (
	"context"
	"database/sql"

	_ "embed"

	"turibot/internal/model/convo"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the exchange-history schema. The statements are idempotent
// so it can run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// PostgresStore persists exchange records to Postgres. The caller owns the
// database connection lifecycle.
type PostgresStore struct {
	DB *sql.DB
}

// NewPostgresStore wraps an open connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Append inserts one exchange row.
func (s *PostgresStore) Append(ctx context.Context, record convo.ExchangeRecord) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO exchanges (id, user_name, created_at, user_message, bot_response, sentiment)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.UserName, record.Timestamp, record.UserMessage, record.BotResponse, string(record.Sentiment),
	)
	return err
}
