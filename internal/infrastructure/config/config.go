package config

import (
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort                 = "8080"
	defaultLiveQueryInterval    = 5 * time.Second
	defaultNotificationTimeout  = 10 * time.Second
	defaultStreamPollInterval   = time.Second
	defaultRevenueReconcileCron = "0 0 3 * * *"
	defaultFCMBaseURL           = "https://fcm.googleapis.com"
)

// Config holds the service knobs read from the environment. Table names are
// resolved by the repositories themselves.
type Config struct {
	Port string

	// ShopLocation is the timezone revenue windows are cut in.
	ShopLocation *time.Location

	StrictTransitions   bool
	LiveQueryInterval   time.Duration
	NotificationTimeout time.Duration

	FCMProjectID    string
	FCMAccessToken  string
	FCMBaseURL      string
	PushGatewayMock bool

	JWTSecret string

	OrderStreamEnabled      bool
	OrderStreamARN          string
	OrderStreamPollInterval time.Duration

	RevenueReconcileEnabled bool
	RevenueReconcileCron    string
}

func Load() Config {
	return Config{
		Port:                    getenvDefault("PORT", defaultPort),
		ShopLocation:            locationFromEnv("SHOP_TIMEZONE"),
		StrictTransitions:       boolFromEnv("ORDER_STRICT_TRANSITIONS", false),
		LiveQueryInterval:       durationFromEnv("LIVE_QUERY_INTERVAL", defaultLiveQueryInterval),
		NotificationTimeout:     durationFromEnv("NOTIFICATION_TIMEOUT", defaultNotificationTimeout),
		FCMProjectID:            os.Getenv("FCM_PROJECT_ID"),
		FCMAccessToken:          os.Getenv("FCM_ACCESS_TOKEN"),
		FCMBaseURL:              getenvDefault("FCM_BASE_URL", defaultFCMBaseURL),
		PushGatewayMock:         boolFromEnv("PUSH_GATEWAY_MOCK", false),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		OrderStreamEnabled:      boolFromEnv("ORDER_STREAM_ENABLED", false),
		OrderStreamARN:          os.Getenv("ORDER_STREAM_ARN"),
		OrderStreamPollInterval: durationFromEnv("ORDER_STREAM_POLL_INTERVAL", defaultStreamPollInterval),
		RevenueReconcileEnabled: boolFromEnv("REVENUE_RECONCILE_ENABLED", true),
		RevenueReconcileCron:    getenvDefault("REVENUE_RECONCILE_CRON", defaultRevenueReconcileCron),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		log.Printf("[config] invalid boolean %s=%q; using %t", key, v, def)
		return def
	}
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid duration %s=%q; using %s", key, v, def)
		return def
	}
	return d
}

func locationFromEnv(key string) *time.Location {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		log.Printf("[config] unknown timezone %s=%q; using UTC err=%v", key, v, err)
		return time.UTC
	}
	return loc
}
