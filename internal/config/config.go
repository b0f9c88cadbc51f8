package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For trimming values

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string // Application port
	Environment string // Environment label (development, production, ...)
	DatabaseURL string // Connection string, only reported by the health check
	StoreFile   string // Path to the JSON users document
	StaticDir   string // SPA build directory
	AppName     string // Application name reported by /api/info
	AppVersion  string // Application version reported by /api/info
	AppAuthor   string // Application author reported by /api/info
	ExposeDebug bool   // Mount /api/debug routes
	RedisAddr   string // Redis server address, empty disables Redis
	RedisPass   string // Redis password
	RedisDB     int    // Redis database number
	LogLevel    string // Logrus level name
	LogPath     string // Optional rotated log file
	DBDriver    string // Export target driver: mysql or sqlite
	DBUser      string // Database user
	DBPassword  string // Database password
	DBHost      string // Database host
	DBPort      string // Database port
	DBName      string // Database name
	SQLitePath  string // SQLite file used when DBDriver is sqlite
	IsProd      bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return fromEnv()
}

func fromEnv() *Config {
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	env := getEnv("APP_ENV", "development")
	isProd := env == "production"
	return &Config{
		AppPort:     getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", "local-db"),
		StoreFile:   getEnv("STORE_FILE", "database/db.json"),
		StaticDir:   getEnv("STATIC_DIR", "frontend/build"),
		AppName:     getEnv("APP_NAME", "TP05 CI/CD Pipeline"),
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),
		AppAuthor:   getEnv("APP_AUTHOR", "Kevin y Octavio"),
		ExposeDebug: getBool("EXPOSE_DEBUG", !isProd),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     redisDB,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPath:     os.Getenv("LOG_PATH"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBName:      getEnv("DB_NAME", "users"),
		SQLitePath:  getEnv("SQLITE_PATH", "users.db"),
		IsProd:      isProd,
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.AppPort
}

// DSN returns the data source name for the configured export driver
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
	return c.SQLitePath
}

// getEnv returns the trimmed value of key, or def when it is unset or blank
func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
