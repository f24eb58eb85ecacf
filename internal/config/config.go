package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For token durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort             string        // Application port
	DBDSN               string        // Full database connection string, overrides the DB_* parts
	DBUser              string        // Database user
	DBPassword          string        // Database password
	DBHost              string        // Database host
	DBPort              string        // Database port
	DBName              string        // Database name
	JWTSecret           string        // JWT secret key
	JWTAlgorithm        string        // JWT signing algorithm
	AccessTokenDuration time.Duration // Access token lifetime
	RedisAddr           string        // Redis server address, empty disables the cache
	RedisPass           string        // Redis password
	RedisDB             int           // Redis database number
	IsProd              bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	tokenMinutes, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_DURATION"))
	if err != nil || tokenMinutes <= 0 {
		tokenMinutes = 30 // Fall back to 30 minutes
	}
	return &Config{
		AppPort:             getenv("APP_PORT", "8000"),                // Application port
		DBDSN:               os.Getenv("DB_DSN"),                       // Full connection string
		DBUser:              os.Getenv("DB_USER"),                      // Database user
		DBPassword:          os.Getenv("DB_PASSWORD"),                  // Database password
		DBHost:              getenv("DB_HOST", "127.0.0.1"),            // Database host
		DBPort:              getenv("DB_PORT", "3306"),                 // Database port
		DBName:              getenv("DB_NAME", "asset_map"),            // Database name
		JWTSecret:           os.Getenv("JWT_SECRET"),                   // JWT secret key
		JWTAlgorithm:        getenv("JWT_ALGORITHM", "HS256"),          // JWT signing algorithm
		AccessTokenDuration: time.Duration(tokenMinutes) * time.Minute, // Access token lifetime
		RedisAddr:           os.Getenv("REDIS_ADDR"),                   // Redis server address
		RedisPass:           os.Getenv("REDIS_PASS"),                   // Redis password
		RedisDB:             redisDB,                                   // Redis database number
		IsProd:              os.Getenv("IS_PROD") == "true",            // Is production environment
	}
}

// DSN returns the MySQL Data Source Name for the configured database
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
