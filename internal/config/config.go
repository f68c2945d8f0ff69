package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// "redis" (padrão) ou "memory" para rodar sem Redis
	StorageDriver string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeminiAPIKey string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		StorageDriver: getEnv("STORAGE_DRIVER", "redis"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
