package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fingerd/internal/domain"
	"fingerd/internal/protocol"
	"fingerd/internal/render"
	"fingerd/internal/repository"
)

// FingerService answers one raw finger query with finished response text.
type FingerService interface {
	Handle(ctx context.Context, rawLine string) Result
}

// Result is a handled query: the response to write back plus what the
// classifier decided, for the caller's diagnostic log.
type Result struct {
	RequestID      string
	Classification domain.Classification
	Query          domain.Query
	Response       string
}

type fingerService struct {
	profile   domain.Profile
	resources repository.ResourceRepository
	audit     repository.QueryLogRepository
	logger    *logrus.Logger
}

// NewFingerService builds the dispatcher. audit may be nil when no audit
// store is configured.
func NewFingerService(
	profile domain.Profile,
	resources repository.ResourceRepository,
	audit repository.QueryLogRepository,
	logger *logrus.Logger,
) FingerService {
	return &fingerService{
		profile:   profile,
		resources: resources,
		audit:     audit,
		logger:    logger,
	}
}

// Handle classifies rawLine, renders the matching response, and guarantees
// the result carries exactly one trailing CRLF. Resources are loaded only
// when the query names the configured user exactly (case-sensitive). Pure
// orchestration otherwise: no state survives the call.
func (s *fingerService) Handle(ctx context.Context, rawLine string) Result {
	classification, query := protocol.Classify(rawLine)

	var body string
	switch classification {
	case domain.ClassificationForwardingDenied:
		body = render.ForwardingDenied()
	case domain.ClassificationUserSearch:
		if query.Username == s.profile.Name {
			content := render.ProfileContent{
				Contact: s.resources.Load(ctx, s.profile.ContactPath),
				Project: s.resources.Load(ctx, s.profile.ProjectPath),
				Plan:    s.resources.Load(ctx, s.profile.PlanPath),
			}
			body = render.Profile(s.profile, content)
		} else {
			body = render.UserNotFound()
		}
	case domain.ClassificationUserList:
		body = render.UserList(s.profile)
	default:
		body = render.InvalidQuery()
	}

	result := Result{
		RequestID:      uuid.NewString(),
		Classification: classification,
		Query:          query,
		Response:       render.Terminate(body),
	}
	s.recordAudit(ctx, rawLine, result)
	return result
}

// recordAudit appends the handled query to the audit store when one is
// configured. Best effort: a failed write is logged and the response is
// unaffected.
func (s *fingerService) recordAudit(ctx context.Context, rawLine string, result Result) {
	if s.audit == nil {
		return
	}
	rec := &repository.QueryRecord{
		RequestID:      result.RequestID,
		ReceivedAt:     time.Now().UTC(),
		RawQuery:       rawLine,
		Classification: string(result.Classification),
		ResponseBytes:  int64(len(result.Response)),
	}
	if _, err := s.audit.Record(ctx, rec); err != nil && s.logger != nil {
		s.logger.Warnf("audit record: %v", err)
	}
}
