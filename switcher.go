package pg

import (
	"context"
	"fmt"
)

// GatewayResolver is called on every operation to determine which gateway to use.
// This allows admin config changes to take effect immediately without restart.
type GatewayResolver func(ctx context.Context) (string, error)

// StaticResolver always resolves to name, e.g. Config.SubscriptionGateway.
func StaticResolver(name string) GatewayResolver {
	return func(context.Context) (string, error) { return name, nil }
}

// DynamicSubscriptionSwitcher resolves the active SubscriptionGateway at request time.
// It implements SubscriptionGateway and delegates all calls to the resolved adapter.
type DynamicSubscriptionSwitcher struct {
	gateways map[string]SubscriptionGateway
	resolver GatewayResolver
}

// NewDynamicSubscriptionSwitcher creates a DynamicSubscriptionSwitcher.
func NewDynamicSubscriptionSwitcher(gateways map[string]SubscriptionGateway, resolver GatewayResolver) *DynamicSubscriptionSwitcher {
	return &DynamicSubscriptionSwitcher{gateways: gateways, resolver: resolver}
}

func (s *DynamicSubscriptionSwitcher) resolve(ctx context.Context) (SubscriptionGateway, error) {
	name, err := s.resolver(ctx)
	if err != nil {
		return nil, fmt.Errorf("pg-switcher: resolver error: %w", err)
	}
	gw, ok := s.gateways[name]
	if !ok {
		return nil, fmt.Errorf("pg-switcher: subscription gateway %q not registered", name)
	}
	return gw, nil
}

func (s *DynamicSubscriptionSwitcher) Name() string { return "dynamic" }

func (s *DynamicSubscriptionSwitcher) StartCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	gw, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return gw.StartCheckout(ctx, req)
}

func (s *DynamicSubscriptionSwitcher) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error) {
	gw, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return gw.CreateSubscription(ctx, req)
}

func (s *DynamicSubscriptionSwitcher) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	gw, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return gw.GetSubscription(ctx, subscriptionID)
}

func (s *DynamicSubscriptionSwitcher) UpdateSubscription(ctx context.Context, subscriptionID string, req UpdateSubscriptionRequest) (*Subscription, error) {
	gw, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return gw.UpdateSubscription(ctx, subscriptionID, req)
}

func (s *DynamicSubscriptionSwitcher) ModifySubscriptionStatus(ctx context.Context, subscriptionID string, action StatusAction, note string) (*Subscription, error) {
	gw, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return gw.ModifySubscriptionStatus(ctx, subscriptionID, action, note)
}

// ActiveGatewayName resolves and returns the name of the currently active subscription gateway.
func (s *DynamicSubscriptionSwitcher) ActiveGatewayName(ctx context.Context) (string, error) {
	gw, err := s.resolve(ctx)
	if err != nil {
		return "", err
	}
	return gw.Name(), nil
}
