package probe

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeResolver answers only fully qualified names, like a resolver with a
// search list would for names it must not expand. Keys are written without
// the root dot.
type fakeResolver struct {
	hosts   map[string][]string
	ns      map[string][]*net.NS
	hostErr error
	nsErr   error
	queries []string
}

func (f *fakeResolver) key(name string) (string, bool) {
	f.queries = append(f.queries, name)
	return strings.CutSuffix(name, ".")
}

func notFound(name string) error {
	return &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if f.hostErr != nil {
		return nil, f.hostErr
	}
	key, absolute := f.key(host)
	if !absolute {
		return nil, notFound(host)
	}
	if addrs, ok := f.hosts[key]; ok {
		return addrs, nil
	}
	return nil, notFound(host)
}

func (f *fakeResolver) LookupNS(ctx context.Context, name string) ([]*net.NS, error) {
	if f.nsErr != nil {
		return nil, f.nsErr
	}
	key, absolute := f.key(name)
	if !absolute {
		return nil, notFound(name)
	}
	if ns, ok := f.ns[key]; ok {
		return ns, nil
	}
	return nil, notFound(name)
}

func TestDNSChecker_Check(t *testing.T) {
	tests := []struct {
		name     string
		resolver *fakeResolver
		query    string
		want     Outcome
		wantErr  bool
	}{
		{
			name:     "resolving host is registered",
			resolver: &fakeResolver{hosts: map[string][]string{"example.com": {"93.184.216.34"}}},
			query:    "example.com",
			want:     OutcomeRegistered,
		},
		{
			name:     "delegated without address is registered",
			resolver: &fakeResolver{ns: map[string][]*net.NS{"parked.net": {{Host: "ns1.parking."}}}},
			query:    "parked.net",
			want:     OutcomeRegistered,
		},
		{
			name:     "nxdomain everywhere is available",
			resolver: &fakeResolver{},
			query:    "nothing-here.org",
			want:     OutcomeAvailable,
		},
		{
			name:     "timeout is an error",
			resolver: &fakeResolver{hostErr: &net.DNSError{Err: "i/o timeout", IsTimeout: true}},
			query:    "slow.com",
			want:     OutcomeUnknown,
			wantErr:  true,
		},
		{
			name:     "ns failure is an error",
			resolver: &fakeResolver{nsErr: errors.New("connection refused")},
			query:    "broken.com",
			want:     OutcomeUnknown,
			wantErr:  true,
		},
		{
			name:     "invalid name is an error",
			resolver: &fakeResolver{},
			query:    "   ",
			want:     OutcomeUnknown,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDNSCheckerWithResolver(tt.resolver, time.Second)
			res := c.Check(context.Background(), tt.query)
			assert.Equal(t, tt.want, res.Outcome)
			if tt.wantErr {
				assert.Error(t, res.Err)
			} else {
				assert.NoError(t, res.Err)
			}
		})
	}
}

func TestDNSChecker_NormalizesName(t *testing.T) {
	r := &fakeResolver{hosts: map[string][]string{"xn--bcher-kva.de": {"127.0.0.1"}}}
	c := NewDNSCheckerWithResolver(r, time.Second)

	res := c.Check(context.Background(), " Bücher.DE. ")
	assert.True(t, res.OK())
	assert.Equal(t, OutcomeRegistered, res.Outcome)
}

func TestDNSChecker_QueriesFullyQualified(t *testing.T) {
	r := &fakeResolver{}
	c := NewDNSCheckerWithResolver(r, time.Second)

	res := c.Check(context.Background(), "unregistered-name.com")
	assert.Equal(t, OutcomeAvailable, res.Outcome)
	assert.Equal(t, []string{"unregistered-name.com.", "unregistered-name.com."}, r.queries)
}

func TestToASCII(t *testing.T) {
	ascii, err := ToASCII("Example.COM.")
	assert.NoError(t, err)
	assert.Equal(t, "example.com", ascii)

	_, err = ToASCII("")
	assert.Error(t, err)
}
