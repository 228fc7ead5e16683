package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/studify/internal/quotes"
	"github.com/dmitrijs2005/studify/internal/storage"
	"github.com/dmitrijs2005/studify/internal/trivia"
)

// Config holds runtime settings shared by the REPL and the HTTP server.
type Config struct {
	Storage       string
	SQLitePath    string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	MemoryQuota   int

	TriviaBaseURL   string
	QuotesProxyURL  string
	DailyQuoteURL   string
	RandomQuotesURL string
	RequestTimeout  time.Duration

	HTTPAddr        string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	ExportPath string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// LoadDefaults populates c with settings for a local single-user install.
func (c *Config) LoadDefaults() {
	c.Storage = storage.KindSQLite
	c.SQLitePath = "studify.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "studify:"
	c.MemoryQuota = 5 << 20

	c.TriviaBaseURL = trivia.DefaultBaseURL
	c.QuotesProxyURL = quotes.DefaultProxyURL
	c.DailyQuoteURL = quotes.DefaultDailyURL
	c.RandomQuotesURL = quotes.DefaultRandomURL
	c.RequestTimeout = 8 * time.Second

	c.HTTPAddr = ":8080"
	c.CORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:5500"}
	c.ShutdownTimeout = 5 * time.Second

	c.LogLevel = "info"
	c.LogFormat = "text"

	c.ExportPath = "studify-export.json"

	c.S3Region = "us-east-1"
}

// StorageOptions maps the storage settings onto storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Kind:          c.Storage,
		SQLitePath:    c.SQLitePath,
		PostgresDSN:   c.PostgresDSN,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisPrefix:   c.RedisPrefix,
		MemoryQuota:   c.MemoryQuota,
	}
}

// BackupEnabled reports whether an S3 bucket is configured.
func (c *Config) BackupEnabled() bool {
	return c.S3Bucket != ""
}

// Load builds a Config from defaults, the JSON file named in args, and the
// flags in args, in that order. It panics on unreadable input.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load over the process command line.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
