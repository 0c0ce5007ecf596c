package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir    string
	JWTSecret  string
	ServerPort string

	// Cron spec for the automatic backup job. The job only runs when the
	// persisted settings have automatic backup switched on.
	BackupSchedule string
}

func Load() *Config {
	// .env é opcional: em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	return &Config{
		DataDir:        getEnv("DATA_DIR", "./data"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
