package history

// Config holds configuration for the check history ledger.
type Config struct {
	// Enabled turns recording on.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// AutoMigrate creates or updates the domain_checks table on startup.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
	// BatchSize is the number of rows per INSERT when flushing.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// RecentLimit is the default number of rows returned by Recent.
	RecentLimit int `mapstructure:"recent_limit" default:"20"`
}
