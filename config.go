package main

import (
	"os"

	"github.com/Zachkp/portfolio/internal/gate"
)

// Config is read from the environment. A .env file is loaded first by
// godotenv's autoload import in main.go.
type Config struct {
	Port           string
	SessionBackend string // "sqlite" or "memory"
	DBPath         string
	TemplateGlob   string

	SMTP SMTPConfig

	Answers gate.Answers
}

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

func LoadConfig() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		SessionBackend: getenv("SESSION_BACKEND", "sqlite"),
		DBPath:         getenv("DB_PATH", "portfolio.db"),
		TemplateGlob:   getenv("TEMPLATE_GLOB", "templates/*"),
		SMTP: SMTPConfig{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
		Answers: gate.Answers{
			First:  getenv("GATE_ANSWER_ONE", "gaminbhoot"),
			Second: getenv("GATE_ANSWER_TWO", "37425744"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
