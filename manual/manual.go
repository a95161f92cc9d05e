// Package manual implements the pg.SubscriptionGateway interface for manually handled subscriptions.
// No API calls are made. Every operation succeeds immediately with a "pending_manual" status.
// The admin is expected to set up and bill the subscription externally.
package manual

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pg "github.com/KriaaCompany/pg-recurring-sdk"
)

const idPrefix = "manual_"

// Adapter implements pg.SubscriptionGateway for manual subscriptions
type Adapter struct{}

// New creates a new manual SubscriptionGateway adapter
func New() *Adapter { return &Adapter{} }

// Name returns the gateway identifier
func (a *Adapter) Name() string { return "manual" }

// StartCheckout records a checkout intent; there is nowhere to redirect the payer
func (a *Adapter) StartCheckout(_ context.Context, req pg.CheckoutRequest) (*pg.CheckoutResponse, error) {
	if req.Amount == "" || req.Description == "" {
		return nil, fmt.Errorf("manual: amount and description are required")
	}
	return &pg.CheckoutResponse{
		Token: newID(),
		Raw: map[string]interface{}{
			"amount":      req.Amount,
			"currency":    req.Currency,
			"description": req.Description,
		},
	}, nil
}

// CreateSubscription records a subscription intent without any API call
func (a *Adapter) CreateSubscription(_ context.Context, req pg.CreateSubscriptionRequest) (*pg.Subscription, error) {
	if req.Token == "" {
		return nil, fmt.Errorf("manual: token is required")
	}
	if req.Description == "" || req.BillingPeriod == "" || req.BillingFrequency <= 0 || req.Amount == "" {
		return nil, fmt.Errorf("manual: description, billing period, billing frequency and amount are required")
	}
	return &pg.Subscription{
		ID:          newID(),
		Status:      pg.StatusPendingManual,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Raw:         map[string]interface{}{"token": req.Token},
	}, nil
}

// GetSubscription returns pending_manual for all manual subscription IDs
func (a *Adapter) GetSubscription(_ context.Context, subscriptionID string) (*pg.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("manual: subscription id is required")
	}
	return &pg.Subscription{ID: subscriptionID, Status: pg.StatusPendingManual}, nil
}

// UpdateSubscription is a no-op for manual subscriptions
func (a *Adapter) UpdateSubscription(_ context.Context, subscriptionID string, req pg.UpdateSubscriptionRequest) (*pg.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("manual: subscription id is required")
	}
	return &pg.Subscription{
		ID:          subscriptionID,
		Status:      pg.StatusPendingManual,
		Description: req.Description,
		Amount:      req.Amount,
	}, nil
}

// ModifySubscriptionStatus is a no-op for manual subscriptions; the admin applies the change
func (a *Adapter) ModifySubscriptionStatus(_ context.Context, subscriptionID string, action pg.StatusAction, note string) (*pg.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("manual: subscription id is required")
	}
	if action == "" {
		action = pg.ActionCancel
	}
	return &pg.Subscription{
		ID:     subscriptionID,
		Status: pg.StatusPendingManual,
		Raw:    map[string]interface{}{"action": string(action), "note": note},
	}, nil
}

func newID() string { return idPrefix + uuid.NewString() }
