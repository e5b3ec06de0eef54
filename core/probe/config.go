package probe

// Config holds configuration for the availability probe.
type Config struct {
	// Kind selects the probe implementation (dns, rdap).
	Kind string `mapstructure:"kind" default:"dns"`
	// TimeoutSeconds bounds a single check.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Resolver is the DNS server (host:port) to query. Empty uses the system resolver.
	Resolver string `mapstructure:"resolver" default:""`
	// RDAPEndpoint is the base URL of the RDAP service.
	RDAPEndpoint string `mapstructure:"rdap_endpoint" default:"https://rdap.org"`
	// RatePerSecond caps checks per second. Zero disables the limiter.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"0"`
	// Burst is the limiter bucket size.
	Burst int `mapstructure:"burst" default:"1"`
	// CacheTTLSeconds is how long successful answers are reused. Zero keeps them
	// for the process lifetime, negative disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

const (
	KindDNS  = "dns"
	KindRDAP = "rdap"
)
