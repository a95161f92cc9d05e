package paypal

import (
	"net/url"
	"strconv"
	"strings"
)

// AckSuccess is the only ACK value treated as success.
const AckSuccess = "Success"

// Response is a parsed NVP response body.
type Response map[string]string

// ErrorDetail is one indexed error descriptor (L_ERRORCODEn and friends).
type ErrorDetail struct {
	Code         string
	ShortMessage string
	LongMessage  string
	SeverityCode string
}

// ParseResponse decodes a URL-encoded NVP body. It never fails: malformed
// escapes are kept as literal text and pairs without a key are skipped. The
// first value wins when a key repeats.
func ParseResponse(body []byte) Response {
	r := Response{}
	for _, pair := range strings.Split(string(body), "&") {
		k, v, _ := strings.Cut(pair, "=")
		k = unescape(k)
		if k == "" {
			continue
		}
		if _, seen := r[k]; !seen {
			r[k] = unescape(v)
		}
	}
	return r
}

// unescape decodes a form component, leaving invalid percent escapes untouched.
func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s):
			if n, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(n))
				i += 2
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (r Response) Ack() string { return r["ACK"] }
func (r Response) Success() bool { return r.Ack() == AckSuccess }
func (r Response) Token() string { return r["TOKEN"] }
func (r Response) CorrelationID() string { return r["CORRELATIONID"] }

// Errors returns every indexed error descriptor, stopping at the first index
// with no descriptor fields.
func (r Response) Errors() []ErrorDetail {
	var out []ErrorDetail
	for i := 0; ; i++ {
		n := strconv.Itoa(i)
		d := ErrorDetail{
			Code:         r["L_ERRORCODE"+n],
			ShortMessage: r["L_SHORTMESSAGE"+n],
			LongMessage:  r["L_LONGMESSAGE"+n],
			SeverityCode: r["L_SEVERITYCODE"+n],
		}
		if d == (ErrorDetail{}) {
			return out
		}
		out = append(out, d)
	}
}

// Raw converts r to the generic map used by gateway-neutral responses.
func (r Response) Raw() map[string]interface{} {
	out := make(map[string]interface{}, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
