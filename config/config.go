package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	AdminPassword string
	CloudinaryURL string
	ResumeFolder  string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string
	CareersEmail string
	SiteBaseURL  string

	CORSOrigins string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: .env not loaded:", err)
		}
	}

	return Config{
		ServerPort:    getEnv("SERVER_PORT", ":3000"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		AdminPassword: getEnv("ADMIN_DASHBOARD_PASSWORD", "socio2026"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		ResumeFolder:  getEnv("RESUME_FOLDER", "resumes"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "application.received"),
		KafkaGroupID:  getEnv("KAFKA_GROUP_ID", "mail-worker"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_APP_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", "careers@withsocio.com"),
		MailFromName: getEnv("MAIL_FROM_NAME", "SOCIO Careers"),
		CareersEmail: getEnv("CAREERS_EMAIL", "careers@withsocio.com"),
		SiteBaseURL:  getEnv("SITE_BASE_URL", "https://socio.christuniversity.in"),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
