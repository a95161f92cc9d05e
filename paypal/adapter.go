package paypal

import (
	"context"
	"fmt"
	"sort"
	"time"

	pg "github.com/KriaaCompany/pg-recurring-sdk"
)

// Config holds PayPal NVP credentials and the environment flag.
type Config struct {
	Credentials
	Environment string // "production" or "sandbox"
}

// Adapter wraps Client and implements pg.SubscriptionGateway
type Adapter struct {
	client *Client
}

// New creates a new PayPal SubscriptionGateway adapter
func New(cfg Config, opts ...Option) (*Adapter, error) {
	c, err := NewClient(cfg.Credentials, cfg.Environment, opts...)
	if err != nil {
		return nil, err
	}
	return NewAdapter(c), nil
}

// NewAdapter wraps an existing Client
func NewAdapter(c *Client) *Adapter { return &Adapter{client: c} }

// Name returns the gateway identifier
func (a *Adapter) Name() string { return "paypal" }

// Client returns the underlying NVP client for calls the adapter does not cover
func (a *Adapter) Client() *Client { return a.client }

// StartCheckout calls SetExpressCheckout
func (a *Adapter) StartCheckout(ctx context.Context, req pg.CheckoutRequest) (*pg.CheckoutResponse, error) {
	opts := NewParams().
		Set("RETURNURL", req.ReturnURL).
		Set("CANCELURL", req.CancelURL).
		Set("PAYMENTREQUEST_0_AMT", req.Amount).
		Set("L_BILLINGAGREEMENTDESCRIPTION0", req.Description)
	if req.Currency != "" {
		opts.Set("PAYMENTREQUEST_0_CURRENCYCODE", req.Currency)
	}
	setExtra(opts, req.Extra)

	res, err := a.client.StartCheckout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("paypal: start checkout failed: %w", err)
	}
	return &pg.CheckoutResponse{
		Token:       res.Token,
		RedirectURL: res.RedirectURL,
		Raw:         res.Response.Raw(),
	}, nil
}

// CreateSubscription calls CreateRecurringPaymentsProfile
func (a *Adapter) CreateSubscription(ctx context.Context, req pg.CreateSubscriptionRequest) (*pg.Subscription, error) {
	opts := NewParams().
		Set("DESC", req.Description).
		Set("BILLINGPERIOD", req.BillingPeriod).
		Set("BILLINGFREQUENCY", req.BillingFrequency).
		Set("AMT", req.Amount)
	if req.Currency != "" {
		opts.Set("CURRENCYCODE", req.Currency)
	}
	if req.InitialAmount != "" {
		opts.Set("INITAMT", req.InitialAmount)
	}
	if req.TotalCycles > 0 {
		opts.Set("TOTALBILLINGCYCLES", req.TotalCycles)
	}
	if !req.StartDate.IsZero() {
		opts.Set("PROFILESTARTDATE", req.StartDate)
	}
	setExtra(opts, req.Extra)

	resp, err := a.client.CreateSubscription(ctx, req.Token, req.PayerID, opts)
	if err != nil {
		return nil, fmt.Errorf("paypal: create subscription failed: %w", err)
	}
	return &pg.Subscription{
		ID:          resp["PROFILEID"],
		Status:      resp["PROFILESTATUS"],
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Raw:         resp.Raw(),
	}, nil
}

// GetSubscription calls GetRecurringPaymentsProfileDetails
func (a *Adapter) GetSubscription(ctx context.Context, subscriptionID string) (*pg.Subscription, error) {
	resp, err := a.client.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("paypal: get subscription failed: %w", err)
	}
	sub := &pg.Subscription{
		ID:          resp["PROFILEID"],
		Status:      resp["STATUS"],
		Description: resp["DESC"],
		Amount:      resp["AMT"],
		Currency:    resp["CURRENCYCODE"],
		Raw:         resp.Raw(),
	}
	if sub.ID == "" {
		sub.ID = subscriptionID
	}
	if v := resp["NEXTBILLINGDATE"]; v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			sub.NextBillingDate = t
		}
	}
	return sub, nil
}

// UpdateSubscription calls UpdateRecurringPaymentsProfile
func (a *Adapter) UpdateSubscription(ctx context.Context, subscriptionID string, req pg.UpdateSubscriptionRequest) (*pg.Subscription, error) {
	opts := NewParams()
	if req.Description != "" {
		opts.Set("DESC", req.Description)
	}
	if req.Amount != "" {
		opts.Set("AMT", req.Amount)
	}
	if req.Note != "" {
		opts.Set("NOTE", req.Note)
	}
	setExtra(opts, req.Extra)

	resp, err := a.client.UpdateSubscription(ctx, subscriptionID, opts)
	if err != nil {
		return nil, fmt.Errorf("paypal: update subscription failed: %w", err)
	}
	id := resp["PROFILEID"]
	if id == "" {
		id = subscriptionID
	}
	return &pg.Subscription{
		ID:          id,
		Description: req.Description,
		Amount:      req.Amount,
		Raw:         resp.Raw(),
	}, nil
}

// ModifySubscriptionStatus calls ManageRecurringPaymentsProfileStatus
func (a *Adapter) ModifySubscriptionStatus(ctx context.Context, subscriptionID string, action pg.StatusAction, note string) (*pg.Subscription, error) {
	if action == "" {
		action = pg.ActionCancel
	}
	resp, err := a.client.ModifySubscriptionStatus(ctx, subscriptionID, string(action), note)
	if err != nil {
		return nil, fmt.Errorf("paypal: modify subscription status failed: %w", err)
	}
	id := resp["PROFILEID"]
	if id == "" {
		id = subscriptionID
	}
	return &pg.Subscription{
		ID:     id,
		Status: statusAfter(pg.StatusAction(capitalize(string(action)))),
		Raw:    resp.Raw(),
	}, nil
}

// statusAfter maps a status action to the profile status PayPal reports once it applies.
func statusAfter(action pg.StatusAction) string {
	switch action {
	case pg.ActionCancel:
		return pg.StatusCancelled
	case pg.ActionSuspend:
		return pg.StatusSuspended
	case pg.ActionReactivate:
		return pg.StatusActive
	}
	return ""
}

// setExtra copies gateway-specific fields in key order so requests are stable.
func setExtra(p *Params, extra map[string]string) {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, extra[k])
	}
}
