package dispatch

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogNavigator records navigation requests. A backend process has no browser
// to drive, so redirects and mailto links are surfaced in the logs for the
// client that issued the action.
type LogNavigator struct{}

func (LogNavigator) RedirectTo(_ context.Context, path string) error {
	log.WithField("path", path).Info("Redirect requested")
	return nil
}

func (LogNavigator) Open(_ context.Context, uri string) error {
	log.WithField("uri", uri).Info("Mailto link opened")
	return nil
}
