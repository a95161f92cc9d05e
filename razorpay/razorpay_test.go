package razorpay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pg "github.com/KriaaCompany/pg-recurring-sdk"
)

var _ pg.SubscriptionGateway = (*Adapter)(nil)

type call struct {
	method string
	path   string
	body   map[string]interface{}
}

// fakeAPI records calls and answers every one with the same result.
type fakeAPI struct {
	calls  []call
	result map[string]interface{}
	err    error
}

func (f *fakeAPI) Get(path string, _ map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.calls = append(f.calls, call{method: "GET", path: path})
	return f.result, f.err
}

func (f *fakeAPI) Post(path string, data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.calls = append(f.calls, call{method: "POST", path: path, body: data})
	return f.result, f.err
}

func (f *fakeAPI) Patch(path string, data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.calls = append(f.calls, call{method: "PATCH", path: path, body: data})
	return f.result, f.err
}

func newTestAdapter(result map[string]interface{}, err error) (*Adapter, *fakeAPI) {
	f := &fakeAPI{result: result, err: err}
	return &Adapter{api: f}, f
}

func TestNew(t *testing.T) {
	a := New(Config{KeyID: "rzp_test_x", KeySecret: "secret"})
	require.Equal(t, "razorpay", a.Name())
	require.NotNil(t, a.api)
}

func TestStartCheckout(t *testing.T) {
	a, f := newTestAdapter(map[string]interface{}{
		"id":        "sub_123",
		"status":    "created",
		"short_url": "https://rzp.io/i/abc",
	}, nil)

	res, err := a.StartCheckout(context.Background(), pg.CheckoutRequest{
		PlanID:      "plan_1",
		TotalCycles: 12,
		Description: "Pro plan",
		Extra:       map[string]string{"user_id": "u-1"},
	})
	require.NoError(t, err)
	require.Equal(t, "sub_123", res.Token)
	require.Equal(t, "https://rzp.io/i/abc", res.RedirectURL)

	require.Len(t, f.calls, 1)
	require.Equal(t, "POST", f.calls[0].method)
	require.Equal(t, "/v1/subscriptions", f.calls[0].path)
	require.Equal(t, "plan_1", f.calls[0].body["plan_id"])
	require.Equal(t, 12, f.calls[0].body["total_count"])
	require.Equal(t, map[string]interface{}{"description": "Pro plan", "user_id": "u-1"}, f.calls[0].body["notes"])
}

func TestStartCheckout_Validation(t *testing.T) {
	a, f := newTestAdapter(nil, nil)

	_, err := a.StartCheckout(context.Background(), pg.CheckoutRequest{TotalCycles: 1})
	require.ErrorContains(t, err, "plan id")
	_, err = a.StartCheckout(context.Background(), pg.CheckoutRequest{PlanID: "plan_1"})
	require.ErrorContains(t, err, "total cycles")
	require.Empty(t, f.calls)
}

func TestStartCheckout_MissingID(t *testing.T) {
	a, _ := newTestAdapter(map[string]interface{}{"status": "created"}, nil)
	_, err := a.StartCheckout(context.Background(), pg.CheckoutRequest{PlanID: "plan_1", TotalCycles: 1})
	require.EqualError(t, err, "razorpay: subscription response missing id")
}

func TestCreateSubscription(t *testing.T) {
	for _, status := range []string{"authenticated", "active"} {
		a, f := newTestAdapter(map[string]interface{}{"id": "sub_123", "status": status}, nil)
		sub, err := a.CreateSubscription(context.Background(), pg.CreateSubscriptionRequest{Token: "sub_123"})
		require.NoError(t, err)
		require.Equal(t, status, sub.Status)
		require.Equal(t, "/v1/subscriptions/sub_123", f.calls[0].path)
	}

	a, _ := newTestAdapter(map[string]interface{}{"id": "sub_123", "status": "created"}, nil)
	_, err := a.CreateSubscription(context.Background(), pg.CreateSubscriptionRequest{Token: "sub_123"})
	require.EqualError(t, err, "razorpay: subscription sub_123 not authorised (status created)")

	_, err = a.CreateSubscription(context.Background(), pg.CreateSubscriptionRequest{})
	require.Error(t, err)
}

func TestGetSubscription(t *testing.T) {
	a, _ := newTestAdapter(map[string]interface{}{
		"id":        "sub_123",
		"status":    "active",
		"charge_at": float64(1793491200),
		"notes":     map[string]interface{}{"description": "Pro plan"},
	}, nil)

	sub, err := a.GetSubscription(context.Background(), "sub_123")
	require.NoError(t, err)
	require.Equal(t, "sub_123", sub.ID)
	require.Equal(t, "active", sub.Status)
	require.Equal(t, "Pro plan", sub.Description)
	require.True(t, sub.NextBillingDate.Equal(time.Unix(1793491200, 0)))
}

func TestGetSubscription_SDKError(t *testing.T) {
	a, _ := newTestAdapter(nil, errors.New("The id provided does not exist"))
	_, err := a.GetSubscription(context.Background(), "sub_missing")
	require.EqualError(t, err, "razorpay: fetch subscription failed: The id provided does not exist")
}

func TestUpdateSubscription(t *testing.T) {
	a, f := newTestAdapter(map[string]interface{}{"id": "sub_123", "status": "active"}, nil)

	_, err := a.UpdateSubscription(context.Background(), "sub_123", pg.UpdateSubscriptionRequest{})
	require.ErrorIs(t, err, ErrEmptyUpdate)
	require.Empty(t, f.calls)

	sub, err := a.UpdateSubscription(context.Background(), "sub_123", pg.UpdateSubscriptionRequest{
		PlanID: "plan_2",
		Extra:  map[string]string{"schedule_change_at": "cycle_end"},
	})
	require.NoError(t, err)
	require.Equal(t, "sub_123", sub.ID)
	require.Equal(t, "PATCH", f.calls[0].method)
	require.Equal(t, map[string]interface{}{"plan_id": "plan_2", "schedule_change_at": "cycle_end"}, f.calls[0].body)
}

func TestModifySubscriptionStatus(t *testing.T) {
	tests := []struct {
		action pg.StatusAction
		path   string
	}{
		{"", "/v1/subscriptions/sub_123/cancel"},
		{pg.ActionCancel, "/v1/subscriptions/sub_123/cancel"},
		{pg.ActionSuspend, "/v1/subscriptions/sub_123/pause"},
		{pg.ActionReactivate, "/v1/subscriptions/sub_123/resume"},
	}
	for _, tt := range tests {
		a, f := newTestAdapter(map[string]interface{}{"id": "sub_123", "status": "cancelled"}, nil)
		_, err := a.ModifySubscriptionStatus(context.Background(), "sub_123", tt.action, "")
		require.NoError(t, err)
		require.Equal(t, "POST", f.calls[0].method)
		require.Equal(t, tt.path, f.calls[0].path)
	}

	a, f := newTestAdapter(nil, nil)
	_, err := a.ModifySubscriptionStatus(context.Background(), "sub_123", "Delete", "")
	require.ErrorContains(t, err, "unsupported status action")
	require.Empty(t, f.calls)
}
