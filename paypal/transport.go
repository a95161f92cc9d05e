package paypal

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// call POSTs params to the NVP endpoint. The ACK field is not inspected here.
func (c *Client) call(ctx context.Context, params *Params) (Response, error) {
	method := formatValue(params.values["METHOD"])
	c.log.Debug("nvp request",
		zap.String("method", method),
		zap.Strings("fields", redactedKeys(params)),
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(params.Encode()).
		Post(c.endpointURL)
	if err != nil {
		c.log.Debug("nvp transport error", zap.String("method", method), zap.Error(err))
		return nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		httpErr := &HTTPError{StatusCode: resp.StatusCode()}
		if parsed := ParseResponse(resp.Body()); len(parsed) > 0 {
			httpErr.Response = parsed
		}
		c.log.Debug("nvp http error", zap.String("method", method), zap.Int("status", resp.StatusCode()))
		return nil, httpErr
	}

	parsed := ParseResponse(resp.Body())
	c.log.Debug("nvp response",
		zap.String("method", method),
		zap.String("ack", parsed.Ack()),
		zap.String("correlation_id", parsed.CorrelationID()),
	)
	return parsed, nil
}

// redactedKeys lists the field names being sent, leaving out the credentials.
func redactedKeys(p *Params) []string {
	out := make([]string, 0, p.Len())
	for _, k := range p.keys {
		switch k {
		case "USER", "PWD", "SIGNATURE":
			continue
		}
		out = append(out, k)
	}
	return out
}

// checkAck applies the success/failure policy shared by the recurring
// profile operations.
func (c *Client) checkAck(r Response) (Response, error) {
	if r.Success() {
		return r, nil
	}
	apiErr := newAPIError(r)
	c.log.Warn("nvp call failed",
		zap.String("ack", apiErr.Ack),
		zap.String("correlation_id", r.CorrelationID()),
		zap.String("message", apiErr.Error()),
	)
	return nil, apiErr
}
