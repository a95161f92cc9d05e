package paypal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	r := ParseResponse([]byte("ACK=Success&TOKEN=EC%2d123&CORRELATIONID=abc&TOKEN=second"))
	require.True(t, r.Success())
	require.Equal(t, "EC-123", r.Token())
	require.Equal(t, "abc", r.CorrelationID())

	require.Empty(t, ParseResponse(nil))
	require.Empty(t, ParseResponse([]byte("&&=orphan")))
}

func TestParseResponse_MalformedEscapes(t *testing.T) {
	r := ParseResponse([]byte("ACK=Success&TOKEN=EC-1&L_LONGMESSAGE0=50%off+today%21&NOTE=100%&FLAG"))
	require.Equal(t, Response{
		"ACK":            "Success",
		"TOKEN":          "EC-1",
		"L_LONGMESSAGE0": "50%off today!",
		"NOTE":           "100%",
		"FLAG":           "",
	}, r)

	require.Equal(t, Response{"%zz": "%zz"}, ParseResponse([]byte("%zz=%zz")))
}

func TestResponse_SuccessIsLiteral(t *testing.T) {
	for _, ack := range []string{"Failure", "SuccessWithWarning", "success", ""} {
		require.False(t, Response{"ACK": ack}.Success(), ack)
	}
}

func TestResponse_Errors(t *testing.T) {
	r := Response{
		"ACK":             "Failure",
		"L_ERRORCODE0":    "10001",
		"L_SHORTMESSAGE0": "Internal Error",
		"L_SEVERITYCODE0": "Error",
		"L_LONGMESSAGE1":  "Second problem",
		"L_ERRORCODE3":    "ignored after gap",
	}
	require.Equal(t, []ErrorDetail{
		{Code: "10001", ShortMessage: "Internal Error", SeverityCode: "Error"},
		{LongMessage: "Second problem"},
	}, r.Errors())

	require.Empty(t, Response{"ACK": "Failure"}.Errors())
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{"all parts", Response{"L_ERRORCODE0": "10001", "L_SHORTMESSAGE0": "Bad", "L_LONGMESSAGE0": "Really bad"}, "10001 - Bad - Really bad"},
		{"code only", Response{"L_ERRORCODE0": "10001"}, "10001"},
		{"short and long", Response{"L_SHORTMESSAGE0": "Bad", "L_LONGMESSAGE0": "Really bad"}, "Bad - Really bad"},
		{"code and long", Response{"L_ERRORCODE0": "10001", "L_LONGMESSAGE0": "Really bad"}, "10001 - Really bad"},
		{"only later index", Response{"L_ERRORCODE1": "10002"}, NoInfoMessage},
		{"nothing", Response{}, NoInfoMessage},
		{"nil", nil, NoInfoMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, failureMessage(tt.resp))
		})
	}
}
