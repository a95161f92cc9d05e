package paypal

import "context"

// CheckoutResult is a successful SetExpressCheckout answer.
type CheckoutResult struct {
	Response    Response
	Token       string
	RedirectURL string // checkout base URL + token
}

func checkoutDefaults() *Params {
	return NewParams().
		Set("ADDROVERRIDE", 0).
		Set("ALLOWNOTE", 0).
		Set("BUYEREMAILOPTINENABLE", 1).
		Set("L_BILLINGTYPE0", "RecurringPayments").
		Set("NOSHIPPING", 1).
		Set("SURVEYENABLE", 0)
}

// StartCheckout calls SetExpressCheckout for a recurring billing agreement.
// RETURNURL, CANCELURL, PAYMENTREQUEST_0_AMT and L_BILLINGAGREEMENTDESCRIPTION0
// are required in opts.
func (c *Client) StartCheckout(ctx context.Context, opts *Params) (*CheckoutResult, error) {
	if err := opts.require("RETURNURL", "CANCELURL", "PAYMENTREQUEST_0_AMT", "L_BILLINGAGREEMENTDESCRIPTION0"); err != nil {
		return nil, err
	}

	params := layer(checkoutDefaults(), opts, c.authParams(MethodSetExpressCheckout))
	resp, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}

	token := resp.Token()
	if token == "" {
		return nil, ErrMissingToken
	}
	return &CheckoutResult{
		Response:    resp,
		Token:       token,
		RedirectURL: c.checkoutURL + token,
	}, nil
}
