package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itsquarehub/helpdesk-service/internal/domain"
	"github.com/itsquarehub/helpdesk-service/internal/events"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func TestNotificationService(t *testing.T) {
	t.Run("ticket created email", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()
		mailer := &fakeMailer{}
		NewNotificationService(dispatcher, mailer, zap.NewNop()).RegisterHandlers()

		err := dispatcher.Publish(context.Background(), events.Event{
			Type:     events.EventTicketCreated,
			TicketID: 1,
			Payload: events.TicketCreatedPayload{
				ReferenceNo: "ITS-1000",
				UserEmail:   "a@x.com",
				FullName:    "A",
				Category:    domain.TicketCategoryHardware,
			},
		})
		require.NoError(t, err)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "a@x.com", mailer.sent[0].To)
		assert.Equal(t, "Ticket Created: ITS-1000", mailer.sent[0].Subject)
		assert.Equal(t, "Hi A! Your Hardware ticket has been received. Ref: ITS-1000", mailer.sent[0].Body)
	})

	t.Run("status updated email", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()
		mailer := &fakeMailer{}
		NewNotificationService(dispatcher, mailer, zap.NewNop()).RegisterHandlers()

		err := dispatcher.Publish(context.Background(), events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: 1,
			Payload: events.TicketStatusChangedPayload{
				ReferenceNo: "ITS-1000",
				UserEmail:   "a@x.com",
				NewStatus:   domain.TicketStatusResolved,
			},
		})
		require.NoError(t, err)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "Update on Ticket: ITS-1000", mailer.sent[0].Subject)
		assert.Equal(t, "Hello, the status of your ticket (ITS-1000) has been updated to: Resolved.", mailer.sent[0].Body)
	})

	t.Run("mailer failure never propagates", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()
		mailer := &fakeMailer{err: errors.New("smtp down")}
		NewNotificationService(dispatcher, mailer, zap.NewNop()).RegisterHandlers()

		err := dispatcher.Publish(context.Background(), events.Event{
			Type:    events.EventTicketCreated,
			Payload: events.TicketCreatedPayload{UserEmail: "a@x.com"},
		})
		assert.NoError(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("malformed payload ignored", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()
		mailer := &fakeMailer{}
		NewNotificationService(dispatcher, mailer, zap.NewNop()).RegisterHandlers()

		err := dispatcher.Publish(context.Background(), events.Event{
			Type:    events.EventTicketCreated,
			Payload: "not a payload",
		})
		assert.NoError(t, err)
		assert.Empty(t, mailer.sent)
	})
}
