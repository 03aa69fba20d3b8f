package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fingerd/internal/repository"
)

const createQueryLogTable = `
CREATE TABLE IF NOT EXISTS query_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id TEXT NOT NULL,
	received_at DATETIME NOT NULL,
	raw_query TEXT NOT NULL,
	classification TEXT NOT NULL,
	response_bytes INTEGER NOT NULL
);
`

type QueryLogRepository struct {
	db *sql.DB
}

func NewQueryLogRepository(db *sql.DB) repository.QueryLogRepository {
	return &QueryLogRepository{db: db}
}

func (r *QueryLogRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createQueryLogTable); err != nil {
		return fmt.Errorf("create query_log table: %w", err)
	}
	return nil
}

func (r *QueryLogRepository) Record(ctx context.Context, rec *repository.QueryRecord) (int64, error) {
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO query_log (request_id, received_at, raw_query, classification, response_bytes)
VALUES (?, ?, ?, ?, ?)`,
		rec.RequestID,
		rec.ReceivedAt,
		rec.RawQuery,
		rec.Classification,
		rec.ResponseBytes,
	)
	if err != nil {
		return 0, fmt.Errorf("insert query record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("query record id: %w", err)
	}
	rec.ID = id
	return id, nil
}

func (r *QueryLogRepository) List(ctx context.Context, limit int) ([]repository.QueryRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, request_id, received_at, raw_query, classification, response_bytes
FROM query_log
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list query records: %w", err)
	}
	defer rows.Close()

	var records []repository.QueryRecord
	for rows.Next() {
		var rec repository.QueryRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.ReceivedAt,
			&rec.RawQuery,
			&rec.Classification,
			&rec.ResponseBytes,
		); err != nil {
			return nil, fmt.Errorf("scan query record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate query records: %w", err)
	}
	return records, nil
}
