package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port    string
	BaseURL string // public base URL used to build media links

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	WhatsAppToken string
	PhoneNumberID string
	VerifyToken   string

	OpenAIKey     string
	GoogleMapsKey string

	MediaDir      string // durable image storage served under /media
	MediaTokenKey string // HMAC key for signed media URLs
	MediaTokenTTL int    // token lifetime in hours

	SendGridKey   string
	DeptEmailFrom string
	DeptEmailTo   string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:    getEnv("PORT", "3000"),
		BaseURL: getEnv("BASE_URL", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "zpbot"),
		DBPort:     getEnv("DB_PORT", "5432"),

		WhatsAppToken: getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID: getEnv("WA_PHONE_NUMBER_ID", "116898241348063"),
		VerifyToken:   getEnv("VERIFY_TOKEN", "defaultSecret"),

		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		GoogleMapsKey: getEnv("GOOGLE_MAPS_API_KEY", ""),

		MediaDir:      getEnv("MEDIA_DIR", "./public/media"),
		MediaTokenKey: getEnv("MEDIA_TOKEN_KEY", "defaultSecret"),
		MediaTokenTTL: getEnvInt("MEDIA_TOKEN_TTL_HOURS", 24*365),

		SendGridKey:   getEnv("SENDGRID_API_KEY", ""),
		DeptEmailFrom: getEnv("DEPT_EMAIL_FROM", "complaints@zppune.gov.in"),
		DeptEmailTo:   getEnv("DEPT_EMAIL_TO", ""),
	}

	// Validate critical configuration
	if AppConfig.WhatsAppToken == "" {
		log.Println("Warning: WHATSAPP_TOKEN is empty. Outbound messages will fail.")
	}
	if AppConfig.VerifyToken == "defaultSecret" {
		log.Println("Warning: Using default VERIFY_TOKEN. Update it in your environment.")
	}
	if AppConfig.MediaTokenKey == "defaultSecret" {
		log.Println("Warning: Using default MEDIA_TOKEN_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
