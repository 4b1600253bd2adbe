// Package readiness explains why a Stripe connected account cannot take
// payments yet.
package readiness

import (
	"slices"

	"rental-notification-service/internal/domain"
)

const (
	reqIDNumber        = "individual.id_number"
	reqIDDocument      = "individual.verification.document"
	reqExternalAccount = "external_account"
	reqTOSDate         = "tos_acceptance.date"
)

// FailureReasons lists every blocking reason for account, in a fixed order.
// A fully enabled account with submitted details yields no reasons.
func FailureReasons(account domain.AccountVerificationStatus) []domain.FailureReason {
	reasons := []domain.FailureReason{}

	if !account.DetailsSubmitted {
		reasons = append(reasons, domain.ReasonMissingBusinessDetails)
	}
	if account.ChargesEnabled && account.PayoutsEnabled {
		return reasons
	}

	req := account.Requirements
	found := 0
	add := func(r domain.FailureReason) {
		reasons = append(reasons, r)
		found++
	}

	if containsAny(req.PendingVerification, reqIDNumber, reqIDDocument) ||
		containsAny(req.PastDue, reqIDNumber, reqIDDocument) {
		add(domain.ReasonMissingIDVerification)
	}
	if slices.Contains(req.CurrentlyDue, reqExternalAccount) || slices.Contains(req.PastDue, reqExternalAccount) {
		add(domain.ReasonMissingBankAccount)
	}
	if slices.Contains(req.CurrentlyDue, reqTOSDate) || slices.Contains(req.PastDue, reqTOSDate) {
		add(domain.ReasonUnacceptedTOS)
	}
	if len(req.PendingVerification) == 0 && len(req.CurrentlyDue) == 0 && len(req.PastDue) == 0 {
		add(domain.ReasonPendingStripeReview)
	}
	if found == 0 {
		reasons = append(reasons, domain.ReasonIncompleteSetup)
	}

	return reasons
}

func containsAny(list []string, values ...string) bool {
	for _, v := range values {
		if slices.Contains(list, v) {
			return true
		}
	}
	return false
}
