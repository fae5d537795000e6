// Package config provides configuration management for cdn-manager.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config.yaml and an optional .env file. Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - API: StrikeTracker base URL, account hash and credentials
//   - Server: HTTP server settings (port, API key)
//   - Database: run history connection details
//   - Storage: MinIO credentials and the snapshot bucket
//   - Lock: redis lock used to coordinate processes
//   - Events: kafka brokers and topic
//   - Log: Logging level and format
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. API_ACCOUNT sets api.account.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.API.Account)
package config
