package pg

import (
	"context"
	"time"
)

// StatusAction is a subscription status change requested from the gateway
type StatusAction string

const (
	ActionCancel     StatusAction = "Cancel"
	ActionSuspend    StatusAction = "Suspend"
	ActionReactivate StatusAction = "Reactivate"
)

// Subscription statuses shared by the adapters. Gateways may report their own
// status strings; these are the ones set when the adapter has to infer one.
const (
	StatusActive        = "Active"
	StatusSuspended     = "Suspended"
	StatusCancelled     = "Cancelled"
	StatusPendingManual = "pending_manual"
)

// CheckoutRequest contains fields for starting a checkout that sets up a billing agreement
type CheckoutRequest struct {
	ReturnURL   string // where the payer lands after approving
	CancelURL   string // where the payer lands after cancelling
	Amount      string // decimal major units, e.g. "10.00"
	Currency    string // e.g. "USD"
	Description string // billing agreement description shown to the payer

	// PlanID and TotalCycles are used by gateways that bind the plan at checkout (Razorpay)
	PlanID      string
	TotalCycles int

	// Extra carries gateway-specific request fields
	Extra map[string]string
}

// CheckoutResponse is returned after a checkout has been started
type CheckoutResponse struct {
	Token       string // gateway token identifying the pending agreement
	RedirectURL string // URL the payer must be sent to for approval
	// Raw contains the original parsed response
	Raw map[string]interface{}
}

// CreateSubscriptionRequest contains fields for turning an approved checkout into a subscription
type CreateSubscriptionRequest struct {
	Token            string
	PayerID          string
	Description      string
	BillingPeriod    string // "Day", "Week", "SemiMonth", "Month", "Year"
	BillingFrequency int
	Amount           string
	Currency         string
	InitialAmount    string
	TotalCycles      int
	StartDate        time.Time // zero means "now"
	Extra            map[string]string
}

// UpdateSubscriptionRequest contains the fields to change on an existing subscription
type UpdateSubscriptionRequest struct {
	Description string
	Amount      string
	Note        string
	PlanID      string
	Extra       map[string]string
}

// Subscription is a normalised view of a recurring payments profile
type Subscription struct {
	ID              string
	Status          string
	Description     string
	Amount          string
	Currency        string
	NextBillingDate time.Time
	// Raw contains the original parsed response
	Raw map[string]interface{}
}

// SubscriptionGateway is the common interface that all recurring payment adapters implement
type SubscriptionGateway interface {
	// Name returns the unique gateway identifier (e.g. "paypal", "razorpay")
	Name() string

	// StartCheckout starts a checkout and returns the URL the payer must approve it at
	StartCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)

	// CreateSubscription creates a subscription from an approved checkout token
	CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error)

	// GetSubscription fetches the current state of a subscription
	GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)

	// UpdateSubscription changes an existing subscription
	UpdateSubscription(ctx context.Context, subscriptionID string, req UpdateSubscriptionRequest) (*Subscription, error)

	// ModifySubscriptionStatus cancels, suspends or reactivates a subscription.
	// An empty action means ActionCancel.
	ModifySubscriptionStatus(ctx context.Context, subscriptionID string, action StatusAction, note string) (*Subscription, error)
}
