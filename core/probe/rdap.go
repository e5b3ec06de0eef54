package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultRDAPEndpoint is the public RDAP bootstrap redirector.
const DefaultRDAPEndpoint = "https://rdap.org"

// RDAPChecker asks an RDAP service about the domain object.
type RDAPChecker struct {
	client   *http.Client
	endpoint string
}

// NewRDAPChecker creates an RDAP checker rooted at endpoint.
func NewRDAPChecker(endpoint string, timeout time.Duration) *RDAPChecker {
	if endpoint == "" {
		endpoint = DefaultRDAPEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RDAPChecker{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

// Check implements Checker.
func (c *RDAPChecker) Check(ctx context.Context, name string) Result {
	ascii, err := ToASCII(name)
	if err != nil {
		return Failed(err)
	}

	target := c.endpoint + "/domain/" + url.PathEscape(ascii)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Failed(fmt.Errorf("build rdap request: %w", err))
	}
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Failed(fmt.Errorf("rdap lookup %s: %w", ascii, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return Registered()
	case http.StatusNotFound:
		return Available()
	default:
		return Failed(fmt.Errorf("rdap lookup %s: unexpected status %d", ascii, resp.StatusCode))
	}
}
