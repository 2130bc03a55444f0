package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "bloodlink",
	Pass: "bloodlink",
	Name: "bloodlink_db",
}

var defaultNotify = Notify{
	BaseURL:     "http://localhost:9091",
	Timeout:     2 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    1 * time.Second,
}

var defaultKafka = Kafka{
	Topic:   "urgent-need",
	GroupID: "bloodlink-worker",
}

var defaultAlerting = Alerting{
	NotifyTimeout: 3 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 100_000,
}

var defaultPprof = Pprof{}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultNotify returns the default notify gateway settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultKafka returns the default Kafka consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultAlerting returns the default alert fanout settings.
func DefaultAlerting() Alerting {
	return defaultAlerting
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
