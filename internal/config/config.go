package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	ServerPort       string
	LLMAPIKey        string
	LLMAPIURL        string
	LLMModel         string
	QuestionBankPath string
	LogJSON          bool
	LogDebug         bool
}

func Load() *Config {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "mentor"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		LLMAPIURL:        getEnv("LLM_API_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		QuestionBankPath: getEnv("QUESTION_BANK_PATH", ""),
		LogJSON:          getEnv("LOG_JSON", "") != "",
		LogDebug:         getEnv("LOG_DEBUG", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
