package paypal

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{Username: "merchant_api1.example.com", Password: "secret", Signature: "sig-abc"}

// nvpServer is a stub NVP endpoint answering every POST with a fixed status and body.
type nvpServer struct {
	*httptest.Server

	mu     sync.Mutex
	calls  int
	form   url.Values
	status int
	body   string
}

func newNVPServer(t *testing.T, status int, body string) *nvpServer {
	t.Helper()
	s := &nvpServer{status: status, body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		s.mu.Lock()
		s.calls++
		s.form = r.PostForm
		status, body := s.status, s.body
		s.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *nvpServer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *nvpServer) Form() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func newTestClient(t *testing.T, srv *nvpServer) *Client {
	t.Helper()
	c, err := NewClient(testCreds, EnvSandbox)
	require.NoError(t, err)
	c.endpointURL = srv.URL
	return c
}
