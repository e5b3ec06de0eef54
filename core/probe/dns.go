package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Resolver is the subset of *net.Resolver used by DNSChecker.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupNS(ctx context.Context, name string) ([]*net.NS, error)
}

// DNSChecker decides availability from DNS. A name that resolves, or that has
// delegated name servers, is registered. A name for which the resolver answers
// NXDOMAIN on both lookups is available. Anything else is an error.
type DNSChecker struct {
	resolver Resolver
	timeout  time.Duration
}

// NewDNSChecker creates a DNS checker. If server is empty the system resolver is
// used, otherwise queries go to server (host:port).
func NewDNSChecker(server string, timeout time.Duration) *DNSChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	resolver := net.DefaultResolver
	if server != "" {
		resolver = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				d := net.Dialer{Timeout: timeout}
				return d.DialContext(ctx, network, server)
			},
		}
	}

	return &DNSChecker{resolver: resolver, timeout: timeout}
}

// NewDNSCheckerWithResolver creates a DNS checker on top of a custom resolver.
func NewDNSCheckerWithResolver(resolver Resolver, timeout time.Duration) *DNSChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DNSChecker{resolver: resolver, timeout: timeout}
}

// Check implements Checker.
func (c *DNSChecker) Check(ctx context.Context, name string) Result {
	ascii, err := ToASCII(name)
	if err != nil {
		return Failed(err)
	}

	// Fully qualified so the resolver never walks the resolv.conf search list.
	fqdn := ascii + "."

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.resolver.LookupHost(ctx, fqdn); err == nil {
		return Registered()
	} else if !isNotFound(err) {
		return Failed(fmt.Errorf("lookup host %s: %w", ascii, err))
	}

	// No address records. A registered name may still be delegated without
	// pointing anywhere, so ask for NS before calling it available.
	ns, err := c.resolver.LookupNS(ctx, fqdn)
	switch {
	case err == nil && len(ns) > 0:
		return Registered()
	case err == nil, isNotFound(err):
		return Available()
	default:
		return Failed(fmt.Errorf("lookup ns %s: %w", ascii, err))
	}
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
