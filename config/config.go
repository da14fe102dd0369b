package config

import (
	"os"
	"time"
)

type Config struct {
	Port         string
	Env          string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	TokenTTL     time.Duration
	RedisURL     string
	CacheTTL     time.Duration
	KafkaBrokers string
	KafkaTopic   string
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "5000"),
		Env:          getEnv("ENV", "development"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "grocery"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenTTL:     getDuration("TOKEN_TTL", 24*time.Hour),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		CacheTTL:     getDuration("CACHE_TTL", 5*time.Minute),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.placed"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
