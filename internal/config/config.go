package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBDriver   string // sqlite or postgres
	DBPath     string // sqlite file
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	DataDir      string
	FieldsConfig string

	DefaultQuestionSet string
	ResponseEndpoint   string

	AutosaveDelayMS int
	NavCooldownMS   int
	SessionTTLMin   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "study.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "physpropprior"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		DataDir:      getEnv("DATA_DIR", "data"),
		FieldsConfig: getEnv("FIELDS_CONFIG", "config/table_fields.json"),

		DefaultQuestionSet: getEnv("DEFAULT_QUESTION_SET", "physical_plausibility"),
		ResponseEndpoint:   getEnv("RESPONSE_ENDPOINT", ""),

		AutosaveDelayMS: getEnvInt("AUTOSAVE_DELAY_MS", 800),
		NavCooldownMS:   getEnvInt("NAV_COOLDOWN_MS", 250),
		SessionTTLMin:   getEnvInt("SESSION_TTL_MIN", 60),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
