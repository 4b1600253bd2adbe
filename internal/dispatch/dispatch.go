// Package dispatch hands a composed message either to an email provider or,
// when sending is disabled, to a mailto: link the landlord opens themselves.
package dispatch

import (
	"context"
	"net/url"
	"strings"

	"rental-notification-service/internal/domain"
	"rental-notification-service/internal/sender"
	"rental-notification-service/internal/template"
)

// Navigator performs navigation side effects on behalf of the caller.
type Navigator interface {
	RedirectTo(ctx context.Context, path string) error
	Open(ctx context.Context, uri string) error
}

// Dispatch delivers msg through mailer when sendEnabled is set and opens a
// mailto link otherwise. Delivery errors are returned unchanged.
func Dispatch(ctx context.Context, id string, action domain.QuickConnectAction, msg domain.ResolvedMessage,
	sendEnabled bool, mailer sender.EmailSender, nav Navigator) error {
	if !sendEnabled {
		return nav.Open(ctx, MailtoURI(msg))
	}
	return mailer.SendEmail(ctx, sender.Message{
		ID:      id,
		Action:  action,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    template.StripHTML(msg.Body),
		HTML:    msg.HTML,
	})
}

// MailtoURI builds mailto:<to>?subject=...&body=... with the body reduced to
// plain text.
func MailtoURI(msg domain.ResolvedMessage) string {
	return "mailto:" + msg.To +
		"?subject=" + encodeURIComponent(msg.Subject) +
		"&body=" + encodeURIComponent(template.StripHTML(msg.Body))
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
