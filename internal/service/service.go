package service

import (
	"context"
	"fmt"
	"time"

	"rental-notification-service/internal/dispatch"
	"rental-notification-service/internal/domain"
	"rental-notification-service/internal/sender"
	"rental-notification-service/internal/template"
	"rental-notification-service/internal/validator"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// InvoiceEditPath is where CreateInvoice sends the landlord.
const InvoiceEditPath = "/invoices/edit"

type Options struct {
	Templates domain.Templates
	Mailer    sender.EmailSender
	Navigator dispatch.Navigator
	// SendEmailEnabled is read once per action.
	SendEmailEnabled func() bool
	Now              func() time.Time
	NewID            func() string
}

type quickConnectService struct {
	templates   domain.Templates
	mailer      sender.EmailSender
	nav         dispatch.Navigator
	sendEnabled func() bool
	now         func() time.Time
	newID       func() string
}

func NewQuickConnectService(opts Options) *quickConnectService {
	s := &quickConnectService{
		templates:   opts.Templates,
		mailer:      opts.Mailer,
		nav:         opts.Navigator,
		sendEnabled: opts.SendEmailEnabled,
		now:         opts.Now,
		newID:       opts.NewID,
	}
	if s.sendEnabled == nil {
		s.sendEnabled = func() bool { return false }
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// HandleQuickConnectAction performs one tenant communication. CreateInvoice
// only navigates; the other actions compose a message from their template
// and dispatch it.
func (s *quickConnectService) HandleQuickConnectAction(ctx context.Context, req domain.QuickConnectRequest) error {
	vars := BuildVariables(req, s.now())

	var tmpl domain.Template
	switch req.Action {
	case domain.ActionCreateInvoice:
		return s.nav.RedirectTo(ctx, InvoiceEditPath)
	case domain.ActionSendDefaultInvoice:
		tmpl = s.templates.Invoice
	case domain.ActionPaymentReminder:
		tmpl = s.templates.Reminder
	case domain.ActionRenewLeaseNotice:
		tmpl = s.templates.NoticeOfLeaseRenewal
	default:
		return fmt.Errorf("%w: %q", validator.ErrUnknownAction, req.Action)
	}

	msg := Compose(tmpl, vars, req.PrimaryTenant.Email, req.PropertyOwner.Email)
	id := s.newID()
	enabled := s.sendEnabled()

	log.WithFields(log.Fields{
		"dispatch_id":   id,
		"action":        req.Action,
		"property_id":   req.Property.ID,
		"send_enabled":  enabled,
		"has_recipient": msg.To != "",
	}).Info("Dispatching quick connect message")

	return dispatch.Dispatch(ctx, id, req.Action, msg, enabled, s.mailer, s.nav)
}

// Compose resolves the three fields of tmpl. Only the HTML part carries the
// sender disclaimer.
func Compose(tmpl domain.Template, vars template.Variables, to, senderEmail string) domain.ResolvedMessage {
	return domain.ResolvedMessage{
		To:      to,
		Subject: template.Process(tmpl.Subject, vars, ""),
		Body:    template.Process(tmpl.Body, vars, ""),
		HTML:    template.Process(tmpl.HTML, vars, senderEmail),
	}
}
