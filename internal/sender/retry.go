package sender

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// RetryingSender retries failed deliveries with exponential backoff.
type RetryingSender struct {
	next         EmailSender
	maxAttempts  int
	initialDelay time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewRetryingSender(next EmailSender, maxAttempts int, initialDelay time.Duration) *RetryingSender {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryingSender{
		next:         next,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		sleep:        sleepContext,
	}
}

func (s *RetryingSender) SendEmail(ctx context.Context, msg Message) error {
	delay := s.initialDelay
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.next.SendEmail(ctx, msg)
		if err == nil {
			if attempt > 1 {
				log.WithFields(log.Fields{
					"attempt":      attempt,
					"max_attempts": s.maxAttempts,
					"dispatch_id":  msg.ID,
				}).Info("Email sent successfully after retry")
			}
			return nil
		}

		if attempt < s.maxAttempts {
			log.WithFields(log.Fields{
				"attempt":      attempt,
				"max_attempts": s.maxAttempts,
				"error":        err,
				"dispatch_id":  msg.ID,
			}).Warn("Failed to send email, retrying...")

			if serr := s.sleep(ctx, delay); serr != nil {
				return err
			}
			delay *= 2
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
