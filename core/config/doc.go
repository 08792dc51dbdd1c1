// Package config provides configuration management for the catalog bridge.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Nucleo: legacy web-service credentials (endpoint, account, storage group, retry policy)
//   - Storage: S3/MinIO credentials and bucket settings for product images
//   - Log: Logging level and format
//
// Upstream credentials are deliberately not validated at load time: a
// missing value surfaces as an authentication or transport failure on the
// first call, never as a startup crash.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
