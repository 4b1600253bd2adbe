package domain

import "database/sql"

type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Tenant struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LeaseStartDate string `json:"leaseStartDate"`
	// LeaseTerm is an amount followed by a unit, e.g. "12m" or "1y".
	LeaseTerm string `json:"leaseTerm"`
}

type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Template holds the raw subject/body/html strings of a message template.
// Fields are untyped because templates come from loosely validated
// configuration; anything but a string is rejected when resolved.
type Template struct {
	Subject any `json:"subject"`
	Body    any `json:"body"`
	HTML    any `json:"html"`
}

type Templates struct {
	Invoice              Template `json:"invoice"`
	Reminder             Template `json:"reminder"`
	NoticeOfLeaseRenewal Template `json:"noticeOfLeaseRenewal"`
}

type ResolvedMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    string `json:"html"`
}

type QuickConnectAction string

const (
	ActionCreateInvoice      QuickConnectAction = "CreateInvoice"
	ActionSendDefaultInvoice QuickConnectAction = "SendDefaultInvoice"
	ActionPaymentReminder    QuickConnectAction = "PaymentReminder"
	ActionRenewLeaseNotice   QuickConnectAction = "RenewLeaseNotice"
)

// QuickConnectRequest is the event published when a landlord triggers a
// tenant communication.
type QuickConnectRequest struct {
	Action          QuickConnectAction `json:"action"`
	Property        Property           `json:"property"`
	TotalRentAmount Amount             `json:"totalRentAmount"`
	DueDate         string             `json:"dueDate"`
	PrimaryTenant   Tenant             `json:"primaryTenant"`
	PropertyOwner   Owner              `json:"propertyOwner"`
}

type Requirements struct {
	PendingVerification []string `json:"pending_verification"`
	CurrentlyDue        []string `json:"currently_due"`
	PastDue             []string `json:"past_due"`
}

// AccountVerificationStatus mirrors the subset of a Stripe connected account
// that decides whether it can take payments.
type AccountVerificationStatus struct {
	ID               string       `json:"id"`
	DetailsSubmitted bool         `json:"details_submitted"`
	ChargesEnabled   bool         `json:"charges_enabled"`
	PayoutsEnabled   bool         `json:"payouts_enabled"`
	Requirements     Requirements `json:"requirements"`
}

type FailureReason string

const (
	ReasonMissingBusinessDetails FailureReason = "Missing business details"
	ReasonMissingIDVerification  FailureReason = "Missing ID verification"
	ReasonMissingBankAccount     FailureReason = "Missing bank account"
	ReasonUnacceptedTOS          FailureReason = "Terms of service not accepted"
	ReasonPendingStripeReview    FailureReason = "Pending Stripe review"
	ReasonIncompleteSetup        FailureReason = "Incomplete account setup"
)

type Category struct {
	Label string `json:"label"`
}

type LineItem struct {
	Payment       Amount   `json:"payment"`
	Category      Category `json:"category"`
	PaymentMethod string   `json:"paymentMethod"`
}

type InvoiceRecord struct {
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	TaxRate   Amount     `json:"taxRate"`
	LineItems []LineItem `json:"lineItems"`
}

type EmailStatus string

const (
	StatusSent   EmailStatus = "sent"
	StatusFailed EmailStatus = "failed"
)

type EmailLog struct {
	DispatchID     string
	Action         QuickConnectAction
	RecipientEmail string
	Subject        string
	Status         EmailStatus
	ErrorMessage   sql.NullString
}
