package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // Host IP for the server
	RESTPort int    // Port for the REST API
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel string // Log level for the application logger

	MazeWidth  int     // Default maze width in cells
	MazeHeight int     // Default maze height in cells
	CellSize   float64 // Default world-space size of one cell
	HazardProb float64 // Default per-cell hazard probability
	PickupProb float64 // Default per-cell pickup probability
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:     mustGetEnv("HOST_IP"),
		RESTPort:   mustGetEnvAsInt("REST_PORT"),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", 10),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		CellSize:   getEnvAsFloatWithDefault("CELL_SIZE", 4),
		HazardProb: getEnvAsFloatWithDefault("HAZARD_PROB", 0.1),
		PickupProb: getEnvAsFloatWithDefault("PICKUP_PROB", 0.2),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable or returns a default value if not set.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
