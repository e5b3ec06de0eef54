package probe

import (
	"fmt"
	"strings"
	"time"
)

// New builds the checker described by cfg, wrapped in the standard decorator
// chain: rate limit, metrics, de-duplication, panic guard.
func New(cfg Config, m Metrics) (Checker, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var base Checker
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", KindDNS:
		base = NewDNSChecker(cfg.Resolver, timeout)
	case KindRDAP:
		base = NewRDAPChecker(cfg.RDAPEndpoint, timeout)
	default:
		return nil, fmt.Errorf("unknown probe kind %q", cfg.Kind)
	}

	c := RateLimited(base, cfg.RatePerSecond, cfg.Burst)
	c = Instrument(c, m)
	c = Deduplicate(c, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	return Guard(c), nil
}
