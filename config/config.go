package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	MAIN_ROUTES string
	APP_PORT    string

	DBDsn string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageUseSSL    bool
	BackupBucket     string
	ArchiveBucket    string

	BackupPassword string
	AdminPassword  string

	RetentionDays int
	AppTimezone   string

	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	NotifyReceiver []string
)

// LoadConfig reads the .env file and initializes the configuration variables
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Server Configuration
	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/api")
	APP_PORT = getEnv("APP_PORT", "5000")

	// Database Configuration
	DBDsn = getEnv("DB_DSN", "host=localhost user=postgres password=postgres dbname=madina_lights port=5432 sslmode=disable")

	// Object Storage Configuration
	StorageEndpoint = getEnv("STORAGE_ENDPOINT", "localhost:9000")
	StorageAccessKey = getEnv("STORAGE_ACCESS_KEY", "")
	StorageSecretKey = getEnv("STORAGE_SECRET_KEY", "")
	StorageUseSSL = getEnvAsBool("STORAGE_SSL", true)
	BackupBucket = getEnv("BACKUP_BUCKET", "mlbackups")
	ArchiveBucket = getEnv("ARCHIVE_BUCKET", "archive_mlbackups")

	// Operation passwords
	BackupPassword = getEnv("BACKUP_PASSWORD", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")

	// Retention and scheduling
	RetentionDays = getEnvAsInt("RETENTION_DAYS", 60)
	AppTimezone = getEnv("APP_TIMEZONE", "Asia/Karachi")

	// Mail notification (optional, disabled when SMTP_HOST is empty)
	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 587)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	NotifyReceiver = splitList(getEnv("NOTIFY_TO", ""))
}

// getEnv reads an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as an integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool reads an environment variable as a boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		// Handle preflight request
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	})
}
