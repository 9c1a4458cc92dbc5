package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Internshala
	InternshalaBaseURL string

	// LetsIntern
	LetsInternBaseURL string

	// Unstop (JavaScript-rendered, needs the browser source)
	UnstopBaseURL  string
	UnstopHeadless bool
	UnstopWait     time.Duration

	// Fetch layer
	PagesPerSource int
	RequestTimeout time.Duration
	RateInterval   time.Duration
	MaxRetries     int // extra attempts after the first
	RetryBaseDelay time.Duration
	FetchBudget    time.Duration

	// Scoring
	MinScore float64

	// Output
	OutputDir string

	// SFTP (optional dashboard upload)
	SFTPHost      string
	SFTPPort      int
	SFTPUser      string
	SFTPPass      string
	SFTPRemoteDir string
}

func Load() Config {
	return Config{
		InternshalaBaseURL: getenv("INTERNSHALA_BASE_URL", "https://internshala.com"),
		LetsInternBaseURL:  getenv("LETSINTERN_BASE_URL", "https://www.letsintern.com"),

		UnstopBaseURL:  getenv("UNSTOP_BASE_URL", "https://unstop.com"),
		UnstopHeadless: getenvBool("UNSTOP_HEADLESS", true),
		UnstopWait:     getenvDuration("UNSTOP_WAIT", 10*time.Second),

		PagesPerSource: getenvInt("PAGES_PER_SOURCE", 5),
		RequestTimeout: getenvDuration("REQUEST_TIMEOUT", 15*time.Second),
		RateInterval:   getenvDuration("RATE_INTERVAL", 2*time.Second),
		MaxRetries:     getenvInt("MAX_RETRIES", 2),
		RetryBaseDelay: getenvDuration("RETRY_BASE_DELAY", time.Second),
		FetchBudget:    getenvDuration("FETCH_BUDGET", 3*time.Minute),

		MinScore: getenvFloat("MIN_SCORE", 5.0),

		OutputDir: getenv("OUTPUT_DIR", "output"),

		SFTPHost:      os.Getenv("SFTP_HOST"),
		SFTPPort:      getenvInt("SFTP_PORT", 22),
		SFTPUser:      os.Getenv("SFTP_USER"),
		SFTPPass:      os.Getenv("SFTP_PASS"),
		SFTPRemoteDir: getenv("SFTP_REMOTE_DIR", "/"),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvFloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
