package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studify/internal/flagx"
	"github.com/dmitrijs2005/studify/internal/timex"
)

// JsonConfig is the on-disk form of Config.
type JsonConfig struct {
	Storage       string `json:"storage"`
	SQLitePath    string `json:"sqlite_path"`
	PostgresDSN   string `json:"postgres_dsn"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	RedisPrefix   string `json:"redis_prefix"`
	MemoryQuota   int    `json:"memory_quota"`

	TriviaBaseURL   string         `json:"trivia_base_url"`
	QuotesProxyURL  string         `json:"quotes_proxy_url"`
	DailyQuoteURL   string         `json:"daily_quote_url"`
	RandomQuotesURL string         `json:"random_quotes_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`

	HTTPAddr        string         `json:"http_addr"`
	CORSOrigins     []string       `json:"cors_origins"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`

	ExportPath string `json:"export_path"`

	S3Bucket    string `json:"s3_bucket"`
	S3Region    string `json:"s3_region"`
	S3Endpoint  string `json:"s3_endpoint"`
	S3AccessKey string `json:"s3_access_key"`
	S3SecretKey string `json:"s3_secret_key"`
}

func toJson(c *Config) JsonConfig {
	return JsonConfig{
		Storage:         c.Storage,
		SQLitePath:      c.SQLitePath,
		PostgresDSN:     c.PostgresDSN,
		RedisAddr:       c.RedisAddr,
		RedisPassword:   c.RedisPassword,
		RedisDB:         c.RedisDB,
		RedisPrefix:     c.RedisPrefix,
		MemoryQuota:     c.MemoryQuota,
		TriviaBaseURL:   c.TriviaBaseURL,
		QuotesProxyURL:  c.QuotesProxyURL,
		DailyQuoteURL:   c.DailyQuoteURL,
		RandomQuotesURL: c.RandomQuotesURL,
		RequestTimeout:  timex.Duration{Duration: c.RequestTimeout},
		HTTPAddr:        c.HTTPAddr,
		CORSOrigins:     c.CORSOrigins,
		ShutdownTimeout: timex.Duration{Duration: c.ShutdownTimeout},
		LogLevel:        c.LogLevel,
		LogFormat:       c.LogFormat,
		ExportPath:      c.ExportPath,
		S3Bucket:        c.S3Bucket,
		S3Region:        c.S3Region,
		S3Endpoint:      c.S3Endpoint,
		S3AccessKey:     c.S3AccessKey,
		S3SecretKey:     c.S3SecretKey,
	}
}

func (jc JsonConfig) apply(c *Config) {
	c.Storage = jc.Storage
	c.SQLitePath = jc.SQLitePath
	c.PostgresDSN = jc.PostgresDSN
	c.RedisAddr = jc.RedisAddr
	c.RedisPassword = jc.RedisPassword
	c.RedisDB = jc.RedisDB
	c.RedisPrefix = jc.RedisPrefix
	c.MemoryQuota = jc.MemoryQuota
	c.TriviaBaseURL = jc.TriviaBaseURL
	c.QuotesProxyURL = jc.QuotesProxyURL
	c.DailyQuoteURL = jc.DailyQuoteURL
	c.RandomQuotesURL = jc.RandomQuotesURL
	c.RequestTimeout = jc.RequestTimeout.Duration
	c.HTTPAddr = jc.HTTPAddr
	c.CORSOrigins = jc.CORSOrigins
	c.ShutdownTimeout = jc.ShutdownTimeout.Duration
	c.LogLevel = jc.LogLevel
	c.LogFormat = jc.LogFormat
	c.ExportPath = jc.ExportPath
	c.S3Bucket = jc.S3Bucket
	c.S3Region = jc.S3Region
	c.S3Endpoint = jc.S3Endpoint
	c.S3AccessKey = jc.S3AccessKey
	c.S3SecretKey = jc.S3SecretKey
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// The file is decoded over the current values, so keys it omits are kept.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := toJson(cfg)
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}
