package sender

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// ConsoleEmailSender logs messages instead of delivering them. Meant for
// local development.
type ConsoleEmailSender struct{}

func NewConsoleEmailSender() *ConsoleEmailSender {
	return &ConsoleEmailSender{}
}

func (s *ConsoleEmailSender) SendEmail(_ context.Context, msg Message) error {
	log.WithFields(log.Fields{
		"dispatch_id": msg.ID,
		"action":      msg.Action,
		"to":          msg.To,
		"subject":     msg.Subject,
	}).Info("Email sent (console provider)")
	log.Debugf("text body:\n%s", msg.Text)
	if msg.HTML != "" {
		log.Debugf("html body:\n%s", msg.HTML)
	}
	return nil
}
