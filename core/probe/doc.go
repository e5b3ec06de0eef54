// Package probe defines the availability-check capability consumed by the
// reconciliation engine, plus concrete checkers and decorators.
//
// A Checker answers a single question for a fully-qualified name: is it
// registered, available, or could the answer not be determined. Failures are
// returned by value in Result, never raised, so callers do not have to
// distinguish "not found" from "lookup broke" by inspecting error types.
//
// # Checkers
//
//   - DNSChecker: host lookup, falling back to an NS lookup on NXDOMAIN.
//   - RDAPChecker: registry lookup over HTTP (200 registered, 404 available).
//
// # Decorators
//
//   - RateLimited: token bucket in front of any checker (golang.org/x/time/rate).
//   - Deduplicate: singleflight plus a TTL cache of successful answers.
//   - Instrument: reports outcomes and latency to a Metrics sink.
//   - Guard: converts panics into error results.
//
// # Usage
//
//	checker, err := probe.New(cfg.Probe, metrics)
//	res := checker.Check(ctx, "example.com")
//	if res.Err != nil {
//	    // unknown, try again on a later run
//	}
package probe
