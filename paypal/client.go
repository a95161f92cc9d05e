// Package paypal is a client for PayPal's NVP Express Checkout and Recurring
// Payments API, plus an adapter exposing it as a pg.SubscriptionGateway.
package paypal

import (
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	productionEndpoint = "https://api-3t.paypal.com/nvp"
	productionCheckout = "https://www.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token="
	sandboxEndpoint    = "https://api-3t.sandbox.paypal.com/nvp"
	sandboxCheckout    = "https://www.sandbox.paypal.com/webscr?cmd=_express-checkout&token="
)

// APIVersion is sent as VERSION on every request.
const APIVersion = 94

const (
	EnvProduction = "production"
	EnvSandbox    = "sandbox"
)

// NVP method names.
const (
	MethodSetExpressCheckout                   = "SetExpressCheckout"
	MethodCreateRecurringPaymentsProfile       = "CreateRecurringPaymentsProfile"
	MethodGetRecurringPaymentsProfileDetails   = "GetRecurringPaymentsProfileDetails"
	MethodUpdateRecurringPaymentsProfile       = "UpdateRecurringPaymentsProfile"
	MethodManageRecurringPaymentsProfileStatus = "ManageRecurringPaymentsProfileStatus"
)

// Credentials are the merchant's API signature credentials.
type Credentials struct {
	Username  string
	Password  string
	Signature string
}

// Client talks to the NVP endpoint of a single environment. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	creds       Credentials
	env         string
	endpointURL string
	checkoutURL string
	http        *resty.Client
	log         *zap.Logger
	now         func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request/response debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.Named("paypal")
		}
	}
}

// WithHTTPClient replaces the default resty client.
func WithHTTPClient(r *resty.Client) Option {
	return func(c *Client) {
		if r != nil {
			c.http = r
		}
	}
}

// NewClient validates creds and selects the endpoints for env. "production"
// selects the live endpoints; anything else selects the sandbox.
func NewClient(creds Credentials, env string, opts ...Option) (*Client, error) {
	switch {
	case creds.Username == "":
		return nil, &ValidationError{Field: "username"}
	case creds.Password == "":
		return nil, &ValidationError{Field: "password"}
	case creds.Signature == "":
		return nil, &ValidationError{Field: "signature"}
	}

	c := &Client{
		creds:       creds,
		env:         EnvSandbox,
		endpointURL: sandboxEndpoint,
		checkoutURL: sandboxCheckout,
		log:         zap.NewNop(),
		now:         time.Now,
	}
	if env == EnvProduction {
		c.env = EnvProduction
		c.endpointURL = productionEndpoint
		c.checkoutURL = productionCheckout
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = resty.New()
	}
	return c, nil
}

func (c *Client) Environment() string { return c.env }
func (c *Client) EndpointURL() string { return c.endpointURL }
func (c *Client) CheckoutURL() string { return c.checkoutURL }

// authParams are the fields applied last on every request.
func (c *Client) authParams(method string) *Params {
	return NewParams().
		Set("METHOD", method).
		Set("USER", c.creds.Username).
		Set("PWD", c.creds.Password).
		Set("SIGNATURE", c.creds.Signature).
		Set("VERSION", APIVersion)
}
