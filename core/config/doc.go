// Package config provides configuration management for the storage provider.
//
// Values come, highest precedence first, from the process environment, an
// optional .env file (godotenv, never overriding the environment), an optional
// storage-provider.yaml read by Viper, and the `default` struct tags of the
// partial configurations. Validate checks what a server needs to start.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key (SERVER_PORT, SERVER_API_KEY)
//   - Storage: driver, endpoint, credentials, region and bucket
//     (STORAGE_DRIVER, STORAGE_BUCKET, STORAGE_REGION, ...)
//   - Log: level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err == nil {
//	    err = cfg.Validate()
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
