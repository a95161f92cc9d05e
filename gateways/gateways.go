// Package gateways builds the subscription gateways described by a loaded pg.Config.
package gateways

import (
	"fmt"

	pg "github.com/KriaaCompany/pg-recurring-sdk"
	"github.com/KriaaCompany/pg-recurring-sdk/manual"
	"github.com/KriaaCompany/pg-recurring-sdk/paypal"
	"github.com/KriaaCompany/pg-recurring-sdk/razorpay"
)

// Registry returns every gateway that cfg carries credentials for, keyed by name.
// The manual gateway is always present. A partially configured PayPal account
// is an error.
func Registry(cfg *pg.Config, opts ...paypal.Option) (map[string]pg.SubscriptionGateway, error) {
	gws := map[string]pg.SubscriptionGateway{}

	m := manual.New()
	gws[m.Name()] = m

	if cfg.PayPal.Username != "" {
		env := paypal.EnvSandbox
		if cfg.PayPal.Production() {
			env = paypal.EnvProduction
		}
		pp, err := paypal.New(paypal.Config{
			Credentials: paypal.Credentials{
				Username:  cfg.PayPal.Username,
				Password:  cfg.PayPal.Password,
				Signature: cfg.PayPal.Signature,
			},
			Environment: env,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("pg-switcher: paypal config: %w", err)
		}
		gws[pp.Name()] = pp
	}

	if cfg.Razorpay.KeyID != "" {
		rp := razorpay.New(razorpay.Config{KeyID: cfg.Razorpay.KeyID, KeySecret: cfg.Razorpay.KeySecret})
		gws[rp.Name()] = rp
	}

	return gws, nil
}

// NewSwitcher builds the registry and routes every call to cfg.SubscriptionGateway.
func NewSwitcher(cfg *pg.Config, opts ...paypal.Option) (*pg.DynamicSubscriptionSwitcher, error) {
	gws, err := Registry(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if _, ok := gws[cfg.SubscriptionGateway]; !ok {
		return nil, fmt.Errorf("pg-switcher: subscription gateway %q not configured", cfg.SubscriptionGateway)
	}
	return pg.NewDynamicSubscriptionSwitcher(gws, pg.StaticResolver(cfg.SubscriptionGateway)), nil
}
