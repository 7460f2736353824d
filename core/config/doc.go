// Package config provides configuration management for the bridge.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and metrics path
//   - Storage: credentials, endpoint, bucket and signed URL timeout
//   - Log: Logging level and format
//   - Database: optional MySQL audit trail
//
// Nested keys map to environment variables by replacing dots with underscores,
// e.g. storage.access_key_id is read from STORAGE_ACCESS_KEY_ID.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
