package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string
	JWTSecret      string

	// API client name -> bcrypt hash of its secret
	APIClients map[string]string
	TokenTTL   time.Duration

	// simulation defaults
	SimGames    int
	SimWorkers  int
	SimSeed     int64
	SimMaxGames int
	BoardCols   int
	BoardRows   int
	WatchDelay  time.Duration

	// analytics
	KafkaBrokers   []string
	AnalyticsTopic string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := append([]string{frontendURL}, SplitList(GetEnv("ALLOWED_ORIGINS", ""))...)

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		JWTSecret:      jwtSecret,
		APIClients:     ParseClients(GetEnv("API_CLIENTS", "")),
		TokenTTL:       time.Duration(GetEnvAsInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		SimGames:       GetEnvAsInt("SIM_GAMES", 1000),
		SimWorkers:     GetEnvAsInt("SIM_WORKERS", runtime.NumCPU()),
		SimSeed:        GetEnvAsInt64("SIM_SEED", time.Now().UnixNano()),
		SimMaxGames:    GetEnvAsInt("SIM_MAX_GAMES", 100000),
		BoardCols:      GetEnvAsInt("BOARD_COLUMNS", 7),
		BoardRows:      GetEnvAsInt("BOARD_ROWS", 6),
		WatchDelay:     time.Duration(GetEnvAsInt("WATCH_DELAY_MS", 400)) * time.Millisecond,
		KafkaBrokers:   SplitList(GetEnv("KAFKA_BROKERS", "")),
		AnalyticsTopic: GetEnv("ANALYTICS_TOPIC", "connect4.simulations"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// SplitList parses a comma separated env value, dropping blanks.
func SplitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseClients reads "name:hash" pairs from a comma separated list.
// Entries without a name or hash are skipped.
func ParseClients(s string) map[string]string {
	clients := make(map[string]string)
	for _, item := range SplitList(s) {
		name, hash, ok := strings.Cut(item, ":")
		if !ok || name == "" || hash == "" {
			log.Printf("Ignoring malformed API_CLIENTS entry %q", item)
			continue
		}
		clients[name] = hash
	}
	return clients
}
