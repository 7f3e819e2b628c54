// Package e2e drives a running dashboard through its pages. The dashboard
// must point at a core API with data; set LOANDESK_E2E_URL to enable.
package e2e

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// TestContext holds the client and the last response of one scenario.
type TestContext struct {
	baseURL string
	client  *http.Client

	status   int
	location string
	body     string
}

// NewTestContext builds a client that keeps the session cookie and does not
// follow redirects, so steps can assert on them.
func NewTestContext(baseURL string) (*TestContext, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &TestContext{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

func (tc *TestContext) GET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *TestContext) POSTForm(path string, form url.Values) error {
	return tc.do(http.MethodPost, path, form)
}

// Follow requests the location of the last redirect.
func (tc *TestContext) Follow() error {
	if tc.location == "" {
		return fmt.Errorf("last response (%d) was not a redirect", tc.status)
	}
	return tc.GET(tc.location)
}

func (tc *TestContext) Status() int      { return tc.status }
func (tc *TestContext) Location() string { return tc.location }
func (tc *TestContext) Body() string     { return tc.body }

func (tc *TestContext) do(method, path string, form url.Values) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, tc.baseURL+path, body)
	if err != nil {
		return err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.status = resp.StatusCode
	tc.location = resp.Header.Get("Location")
	tc.body = string(raw)
	return nil
}
