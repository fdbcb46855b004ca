// Package config provides configuration management for the Inventory Manager.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv). Defaults live in the `default`
// struct tags of each section.
//
// # Configuration Structure
//
//   - Inventory: input CSV paths and the report output directory
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials, bucket and prefix for published reports
//   - Database: snapshot database driver and connection details
//   - Log: logging level and format
//   - Metrics: prometheus namespace
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Inventory.OutputDir)
package config
