// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on the partial
// config types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection for the sync-run store
//   - Storage: S3/MinIO credentials for the feed bucket
//   - Shop: merchant catalog identity and location cache TTL
//   - Feed: feed source endpoints and index cache TTL
//   - Sync: run tunables (page size, pacing, error cap)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
