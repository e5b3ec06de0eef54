// Package config provides configuration management for the domain checker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each section's struct in its
// own package, as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials for s3:// spreadsheet locations
//   - Log: Logging level and format
//   - Database: history database connection (sqlite or MySQL)
//   - Probe: probe kind, timeouts, rate limit and result cache
//   - Reconcile: worker count, courtesy delay, save retries
//   - History: ledger switches and batch sizes
//
// Environment keys are the upper-cased path joined with underscores, for
// example RECONCILE_MAX_DELAY_MS or PROBE_KIND.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Probe.Kind)
package config
