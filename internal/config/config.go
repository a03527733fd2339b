package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Voice   VoiceConfig
	Content ContentConfig
	SMTP    SMTPConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	TracingEnabled     bool
}

type VoiceConfig struct {
	// Enabled feature-detects the voice capability. When false the websocket
	// endpoint is inert and the rest of the API is unaffected.
	Enabled       bool
	SilenceWindow time.Duration
	ActionDelay   time.Duration
	DisplayWindow time.Duration
	ClearDelay    time.Duration
}

type ContentConfig struct {
	// DefaultLanguage is the fallback when Accept-Language matches nothing.
	DefaultLanguage string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	// VolunteerInbox receives assistance-request notifications.
	VolunteerInbox string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			TracingEnabled:     getEnvAsBool("TRACING_ENABLED", false),
		},
		Voice: VoiceConfig{
			Enabled:       getEnvAsBool("VOICE_ENABLED", true),
			SilenceWindow: getEnvAsMillis("VOICE_SILENCE_WINDOW_MS", 2000),
			ActionDelay:   getEnvAsMillis("VOICE_ACTION_DELAY_MS", 1500),
			DisplayWindow: getEnvAsMillis("VOICE_DISPLAY_WINDOW_MS", 3000),
			ClearDelay:    getEnvAsMillis("VOICE_CLEAR_DELAY_MS", 2000),
		},
		Content: ContentConfig{
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		},
		SMTP: SMTPConfig{
			Host:           getEnv("SMTP_HOST", ""),
			Port:           getEnvAsInt("SMTP_PORT", 587),
			Email:          getEnv("SMTP_EMAIL", ""),
			Password:       getEnv("SMTP_PASSWORD", ""),
			SenderName:     getEnv("SMTP_SENDER_NAME", "CommunityConnect"),
			VolunteerInbox: getEnv("VOLUNTEER_INBOX", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsMillis(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Millisecond
}
