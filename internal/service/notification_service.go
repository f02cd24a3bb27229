package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/itsquarehub/helpdesk-service/internal/events"
	"github.com/itsquarehub/helpdesk-service/internal/mail"
)

// NotificationService emails users on ticket events. Dispatch is
// best-effort: failures are logged and never propagate to the operation
// that published the event.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to ticket events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		n.logger.Warn("unexpected payload for ticket_created event", zap.String("event_id", event.ID))
		return nil
	}

	subject := fmt.Sprintf("Ticket Created: %s", payload.ReferenceNo)
	body := fmt.Sprintf("Hi %s! Your %s ticket has been received. Ref: %s",
		payload.FullName, payload.Category, payload.ReferenceNo)

	n.send(ctx, payload.UserEmail, subject, body, event)
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		n.logger.Warn("unexpected payload for ticket_status_changed event", zap.String("event_id", event.ID))
		return nil
	}

	subject := fmt.Sprintf("Update on Ticket: %s", payload.ReferenceNo)
	body := fmt.Sprintf("Hello, the status of your ticket (%s) has been updated to: %s.",
		payload.ReferenceNo, payload.NewStatus)

	n.send(ctx, payload.UserEmail, subject, body, event)
	return nil
}

func (n *NotificationService) send(ctx context.Context, to, subject, body string, event events.Event) {
	if n.mailer == nil {
		return
	}
	if err := n.mailer.Send(ctx, to, subject, body); err != nil {
		n.logger.Error("notification dispatch failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("ticket_id", event.TicketID),
			zap.Error(err))
		return
	}
	n.logger.Info("notification sent",
		zap.String("event_type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID))
}
