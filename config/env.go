package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Stage      string
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	JWTExpiry  string
	UploadDir  string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	ContactTo  string
	F2SAPIKey  string
	OriginURL  string
}

// AppConfig is populated by LoadConfig; the zero value keeps field access safe
// before then.
var AppConfig = &Config{}

// LoadConfig reads the environment into AppConfig and fails fast on anything
// the server cannot run without.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		Stage:      getEnv("STAGE", "dev"),
		Port:       getEnv("PORT", "3001"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USERNAME", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_DATABASE", "ewabey"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTExpiry:  getEnv("JWT_EXPIRY", "1h"),
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		SMTPFrom:   getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		ContactTo:  getEnv("CONTACT_TO", os.Getenv("SMTP_USER")),
		F2SAPIKey:  os.Getenv("F2S_API_KEY"),
		OriginURL:  os.Getenv("ORIGIN_URL"),
	}

	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if AppConfig.Stage == "prod" && AppConfig.DBPassword == "" {
		log.Fatal("DB_PASSWORD must be set in prod")
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Stage: %s", AppConfig.Stage)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
