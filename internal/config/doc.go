// Package config loads runtime configuration for the studify binaries.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   storage backend: memory, sqlite, postgres, redis
//	-f string   SQLite database file
//	-d string   PostgreSQL DSN
//	-r string   Redis address (host:port)
//	-a string   HTTP listen address (studify-server)
//	-t int      provider request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//	-o string   default export file
//	-b string   S3 bucket for backups
//	-e string   S3 endpoint (MinIO and friends)
//	-g string   S3 region
//	-u string   S3 access key
//	-p string   S3 secret key
//
// # JSON schema
//
// Durations use timex.Duration, so "8s" and 8000000000 are both accepted.
// Keys missing from the file keep their default.
//
//	{
//	  "storage": "sqlite",
//	  "sqlite_path": "studify.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_prefix": "studify:",
//	  "trivia_base_url": "https://opentdb.com",
//	  "request_timeout": "8s",
//	  "http_addr": ":8080",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "s3_bucket": "studify-backups"
//	}
//
// This package does not read environment variables.
package config
