package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/itsquarehub/helpdesk-service/internal/domain"
	"github.com/itsquarehub/helpdesk-service/internal/events"
	"github.com/itsquarehub/helpdesk-service/internal/repository"
	apperrors "github.com/itsquarehub/helpdesk-service/pkg/util"
)

const (
	referenceCachePrefix = "ticket:ref:"
	referenceCacheTTL    = 30 * time.Second
)

// TicketService coordinates the ticket lifecycle: creation, reference
// lookup, listing and status transitions.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	cache      *redis.Client
	logger     *zap.Logger
	validate   *validator.Validate
}

// TicketDependencies bundles collaborators for the ticket service. Cache is
// optional; when nil every reference lookup goes straight to the store.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Cache      *redis.Client
	Logger     *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	FullName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Subject     string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required,oneof=Hardware Software Account"`
	Priority    string `validate:"required,oneof=Low Mid High Critical"`
	ImageURL    *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		logger:     logger,
		validate:   validator.New(),
	}
}

// Create validates the submission, assigns a reference number and persists
// the ticket in the Pending state. The created notification is published
// only after the store write succeeds.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.NewValidationError("invalid ticket submission", validationDetails(err))
	}

	refNo, err := s.tickets.NextReferenceNo(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	ticket := &domain.Ticket{
		ReferenceNo: refNo,
		UserEmail:   strings.TrimSpace(input.Email),
		FullName:    strings.TrimSpace(input.FullName),
		Subject:     strings.TrimSpace(input.Subject),
		Description: strings.TrimSpace(input.Description),
		Category:    domain.TicketCategory(input.Category),
		Priority:    domain.TicketPriority(input.Priority),
		Status:      domain.TicketStatusPending,
		ImageURL:    input.ImageURL,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			ReferenceNo: ticket.ReferenceNo,
			UserEmail:   ticket.UserEmail,
			FullName:    ticket.FullName,
			Category:    ticket.Category,
		},
	})
	return ticket, nil
}

// GetByReference resolves a ticket by its reference number, consulting the
// cache first. Cache failures are logged and fall through to the store.
func (s *TicketService) GetByReference(ctx context.Context, ref string) (*domain.Ticket, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperrors.NewValidationError("reference number required", nil)
	}

	if cached := s.cacheGet(ctx, ref); cached != nil {
		return cached, nil
	}

	ticket, err := s.tickets.GetByReference(ctx, ref)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.cacheSet(ctx, ticket)
	return ticket, nil
}

// List returns all tickets ordered by creation time descending.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tickets, nil
}

// UpdateStatus transitions a ticket to the given status, stamping or
// clearing resolved_at in the same statement. The status-change
// notification is published only after the store write succeeds.
func (s *TicketService) UpdateStatus(ctx context.Context, id int64, newStatus domain.TicketStatus, email, refNo string) error {
	if !newStatus.Valid() {
		return apperrors.NewValidationError("invalid status", map[string]any{
			"status": newStatus,
		})
	}

	var resolvedAt *time.Time
	if newStatus == domain.TicketStatusResolved {
		now := time.Now()
		resolvedAt = &now
	}

	if err := s.tickets.UpdateStatus(ctx, id, newStatus, resolvedAt); err != nil {
		return apperrors.MapError(err)
	}

	s.cacheInvalidate(ctx, refNo)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: id,
		Payload: events.TicketStatusChangedPayload{
			ReferenceNo: refNo,
			UserEmail:   email,
			NewStatus:   newStatus,
		},
	})
	return nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *TicketService) cacheGet(ctx context.Context, ref string) *domain.Ticket {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, referenceCachePrefix+ref).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("reference cache read failed", zap.Error(err))
		}
		return nil
	}
	var ticket domain.Ticket
	if err := json.Unmarshal(raw, &ticket); err != nil {
		s.logger.Warn("reference cache entry corrupt", zap.Error(err))
		return nil
	}
	return &ticket
}

func (s *TicketService) cacheSet(ctx context.Context, ticket *domain.Ticket) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(ticket)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, referenceCachePrefix+ticket.ReferenceNo, raw, referenceCacheTTL).Err(); err != nil {
		s.logger.Warn("reference cache write failed", zap.Error(err))
	}
}

func (s *TicketService) cacheInvalidate(ctx context.Context, ref string) {
	if s.cache == nil || ref == "" {
		return
	}
	if err := s.cache.Del(ctx, referenceCachePrefix+ref).Err(); err != nil {
		s.logger.Warn("reference cache invalidation failed", zap.Error(err))
	}
}

func validationDetails(err error) map[string]any {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
