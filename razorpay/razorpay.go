// Package razorpay implements the pg.SubscriptionGateway interface using the Razorpay SDK.
package razorpay

import (
	"context"
	"errors"
	"fmt"
	"time"

	rzp "github.com/razorpay/razorpay-go"
	rzpErrors "github.com/razorpay/razorpay-go/errors"

	pg "github.com/KriaaCompany/pg-recurring-sdk"
)

const subscriptionsPath = "/v1/subscriptions"

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// ErrEmptyUpdate is returned when an update request carries no field Razorpay can change.
var ErrEmptyUpdate = errors.New("razorpay: nothing to update")

// Config holds Razorpay subscription credentials
type Config struct {
	KeyID     string
	KeySecret string
}

// api is the part of the razorpay-go request client the adapter uses
type api interface {
	Get(path string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Post(path string, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Patch(path string, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Adapter wraps the Razorpay SDK and implements pg.SubscriptionGateway
type Adapter struct {
	cfg Config
	api api
}

// New creates a new Razorpay SubscriptionGateway adapter
func New(cfg Config) *Adapter {
	client := rzp.NewClient(cfg.KeyID, cfg.KeySecret)
	return &Adapter{cfg: cfg, api: client.Request}
}

// Name returns the gateway identifier
func (a *Adapter) Name() string { return "razorpay" }

// StartCheckout creates a subscription on a plan; the payer authorises it at short_url
func (a *Adapter) StartCheckout(_ context.Context, req pg.CheckoutRequest) (*pg.CheckoutResponse, error) {
	if req.PlanID == "" {
		return nil, fmt.Errorf("razorpay: plan id is required")
	}
	if req.TotalCycles <= 0 {
		return nil, fmt.Errorf("razorpay: total cycles must be positive")
	}

	notes := map[string]interface{}{}
	if req.Description != "" {
		notes["description"] = req.Description
	}
	for k, v := range req.Extra {
		notes[k] = v
	}
	body := map[string]interface{}{
		"plan_id":         req.PlanID,
		"total_count":     req.TotalCycles,
		"customer_notify": 1,
		"notes":           notes,
	}

	result, err := a.api.Post(subscriptionsPath, body, jsonHeaders)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create subscription failed: %s", describeError(err))
	}

	id, ok := result["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay: subscription response missing id")
	}
	shortURL, _ := result["short_url"].(string)
	return &pg.CheckoutResponse{Token: id, RedirectURL: shortURL, Raw: result}, nil
}

// CreateSubscription confirms that the subscription started at checkout has been authorised
func (a *Adapter) CreateSubscription(ctx context.Context, req pg.CreateSubscriptionRequest) (*pg.Subscription, error) {
	if req.Token == "" {
		return nil, fmt.Errorf("razorpay: token is required")
	}
	sub, err := a.GetSubscription(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	switch sub.Status {
	case "authenticated", "active":
		return sub, nil
	}
	return nil, fmt.Errorf("razorpay: subscription %s not authorised (status %s)", sub.ID, sub.Status)
}

// GetSubscription fetches a Razorpay subscription
func (a *Adapter) GetSubscription(_ context.Context, subscriptionID string) (*pg.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("razorpay: subscription id is required")
	}
	result, err := a.api.Get(subscriptionPath(subscriptionID, ""), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: fetch subscription failed: %s", describeError(err))
	}
	return toSubscription(result, subscriptionID), nil
}

// UpdateSubscription changes the plan or other updatable fields of a subscription
func (a *Adapter) UpdateSubscription(_ context.Context, subscriptionID string, req pg.UpdateSubscriptionRequest) (*pg.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("razorpay: subscription id is required")
	}
	body := map[string]interface{}{}
	for k, v := range req.Extra {
		body[k] = v
	}
	if req.PlanID != "" {
		body["plan_id"] = req.PlanID
	}
	if len(body) == 0 {
		return nil, ErrEmptyUpdate
	}

	result, err := a.api.Patch(subscriptionPath(subscriptionID, ""), body, jsonHeaders)
	if err != nil {
		return nil, fmt.Errorf("razorpay: update subscription failed: %s", describeError(err))
	}
	return toSubscription(result, subscriptionID), nil
}

// ModifySubscriptionStatus cancels, pauses or resumes a subscription
func (a *Adapter) ModifySubscriptionStatus(_ context.Context, subscriptionID string, action pg.StatusAction, _ string) (*pg.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("razorpay: subscription id is required")
	}

	var op string
	var body map[string]interface{}
	switch action {
	case "", pg.ActionCancel:
		op, body = "cancel", map[string]interface{}{"cancel_at_cycle_end": 0}
	case pg.ActionSuspend:
		op, body = "pause", map[string]interface{}{"pause_at": "now"}
	case pg.ActionReactivate:
		op, body = "resume", map[string]interface{}{"resume_at": "now"}
	default:
		return nil, fmt.Errorf("razorpay: unsupported status action %q", action)
	}

	result, err := a.api.Post(subscriptionPath(subscriptionID, op), body, jsonHeaders)
	if err != nil {
		return nil, fmt.Errorf("razorpay: %s subscription failed: %s", op, describeError(err))
	}
	return toSubscription(result, subscriptionID), nil
}

func subscriptionPath(id, op string) string {
	if op == "" {
		return fmt.Sprintf("%s/%s", subscriptionsPath, id)
	}
	return fmt.Sprintf("%s/%s/%s", subscriptionsPath, id, op)
}

// toSubscription maps a subscription entity onto pg.Subscription
func toSubscription(result map[string]interface{}, fallbackID string) *pg.Subscription {
	sub := &pg.Subscription{ID: fallbackID, Raw: result}
	if v, ok := result["id"].(string); ok && v != "" {
		sub.ID = v
	}
	if v, ok := result["status"].(string); ok {
		sub.Status = v
	}
	if notes, ok := result["notes"].(map[string]interface{}); ok {
		if v, ok := notes["description"].(string); ok {
			sub.Description = v
		}
	}
	// charge_at is a unix timestamp, decoded from JSON as float64
	if v, ok := result["charge_at"].(float64); ok && v > 0 {
		sub.NextBillingDate = time.Unix(int64(v), 0).UTC()
	}
	return sub
}

// describeError extracts a meaningful message from razorpay-go SDK errors
func describeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if msg != "" {
		return msg
	}
	switch err.(type) {
	case *rzpErrors.BadRequestError:
		return "bad request (response body could not be parsed; check API credentials and payload)"
	case *rzpErrors.ServerError:
		return "server error from Razorpay (response body could not be parsed)"
	case *rzpErrors.GatewayError:
		return "gateway error from Razorpay (response body could not be parsed)"
	default:
		return "unknown error from Razorpay (empty error message)"
	}
}
