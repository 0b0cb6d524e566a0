package repository

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// RoundTripperFunc allows us to easily mock http.Client responses in tests.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// countingClient returns a client whose every request is answered by fn, and a
// counter of how many requests reached it.
func countingClient(fn func(req *http.Request) (*http.Response, error)) (*http.Client, *atomic.Int32) {
	calls := new(atomic.Int32)
	client := &http.Client{
		Transport: RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			calls.Add(1)
			return fn(req)
		}),
	}
	return client, calls
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}
