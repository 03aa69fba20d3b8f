package repository

import (
	"context"
	"time"
)

// ResourceRepository loads named profile resources (contact, project, plan).
// Load never fails: a missing or unreadable resource yields the empty string.
type ResourceRepository interface {
	Load(ctx context.Context, path string) string
}

// QueryRecord is one handled query as persisted to the audit store.
type QueryRecord struct {
	ID             int64
	RequestID      string
	ReceivedAt     time.Time
	RawQuery       string
	Classification string
	ResponseBytes  int64
}

// QueryLogRepository defines persistence operations for the query audit log.
type QueryLogRepository interface {
	Init(ctx context.Context) error
	Record(ctx context.Context, rec *QueryRecord) (int64, error)
	List(ctx context.Context, limit int) ([]QueryRecord, error)
}
