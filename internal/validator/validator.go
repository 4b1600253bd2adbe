package validator

import (
	"errors"
	"regexp"
	"strings"

	"rental-notification-service/internal/domain"
)

var (
	ErrEmptyEmail         = errors.New("email is empty")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrUnknownAction      = errors.New("unknown quick connect action")
	ErrEmptyAccountID     = errors.New("account ID is empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

func ValidateAction(action domain.QuickConnectAction) error {
	switch action {
	case domain.ActionCreateInvoice,
		domain.ActionSendDefaultInvoice,
		domain.ActionPaymentReminder,
		domain.ActionRenewLeaseNotice:
		return nil
	}
	return ErrUnknownAction
}

// ValidateQuickConnectRequest checks an incoming request before it reaches
// the service. The tenant address only matters for actions that compose a
// message.
func ValidateQuickConnectRequest(req domain.QuickConnectRequest) error {
	if err := ValidateAction(req.Action); err != nil {
		return err
	}
	if req.Action == domain.ActionCreateInvoice {
		return nil
	}
	return ValidateEmail(req.PrimaryTenant.Email)
}

func ValidateAccount(account domain.AccountVerificationStatus) error {
	if strings.TrimSpace(account.ID) == "" {
		return ErrEmptyAccountID
	}
	return nil
}
