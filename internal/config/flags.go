package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/studify/internal/flagx"
)

var knownFlags = []string{"-s", "-f", "-d", "-r", "-a", "-t", "-l", "-o", "-b", "-e", "-g", "-u", "-p"}

// parseFlags populates cfg from the flags it recognises in args; see the
// package doc for the list. Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (memory, sqlite, postgres, redis)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "SQLite database file")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "HTTP listen address")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "provider request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ExportPath, "o", cfg.ExportPath, "default export file")

	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "S3 endpoint")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
