package paypal

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CreateSubscription calls CreateRecurringPaymentsProfile for an approved
// checkout token. DESC, BILLINGPERIOD, BILLINGFREQUENCY and AMT are required
// in opts. PROFILESTARTDATE defaults to now and must be a time.Time.
func (c *Client) CreateSubscription(ctx context.Context, token, payerID string, opts *Params) (Response, error) {
	if token == "" {
		return nil, &ValidationError{Field: "token"}
	}
	if payerID == "" {
		return nil, &ValidationError{Field: "payer id"}
	}
	if err := opts.require("DESC", "BILLINGPERIOD", "BILLINGFREQUENCY", "AMT"); err != nil {
		return nil, err
	}

	defaults := NewParams().
		Set("INITAMT", 0).
		Set("PROFILESTARTDATE", c.now())
	enforced := NewParams().
		Set("TOKEN", token).
		Set("PAYERID", payerID)

	params := layer(defaults, opts, enforced, c.authParams(MethodCreateRecurringPaymentsProfile))
	start, err := toDate(params.values["PROFILESTARTDATE"])
	if err != nil {
		return nil, err
	}
	params.Set("PROFILESTARTDATE", formatDate(start))

	resp, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.checkAck(resp)
}

// GetSubscription calls GetRecurringPaymentsProfileDetails.
func (c *Client) GetSubscription(ctx context.Context, profileID string) (Response, error) {
	if profileID == "" {
		return nil, &ValidationError{Field: "profile id"}
	}
	params := layer(
		NewParams().Set("PROFILEID", profileID),
		c.authParams(MethodGetRecurringPaymentsProfileDetails),
	)
	resp, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.checkAck(resp)
}

// UpdateSubscription calls UpdateRecurringPaymentsProfile with opts.
func (c *Client) UpdateSubscription(ctx context.Context, profileID string, opts *Params) (Response, error) {
	if profileID == "" {
		return nil, &ValidationError{Field: "profile id"}
	}
	params := layer(
		opts,
		NewParams().Set("PROFILEID", profileID),
		c.authParams(MethodUpdateRecurringPaymentsProfile),
	)
	resp, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.checkAck(resp)
}

// ModifySubscriptionStatus calls ManageRecurringPaymentsProfileStatus. An
// empty action cancels the profile; note is sent only when non-empty.
func (c *Client) ModifySubscriptionStatus(ctx context.Context, profileID, action, note string) (Response, error) {
	if profileID == "" {
		return nil, &ValidationError{Field: "profile id"}
	}
	if action == "" {
		action = "Cancel"
	}

	fields := NewParams().
		Set("PROFILEID", profileID).
		Set("ACTION", capitalize(action))
	if note != "" {
		fields.Set("NOTE", note)
	}
	resp, err := c.call(ctx, layer(fields, c.authParams(MethodManageRecurringPaymentsProfileStatus)))
	if err != nil {
		return nil, err
	}
	return c.checkAck(resp)
}

// capitalize upper-cases the first letter only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}
