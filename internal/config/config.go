package config

import (
	"log"
	"os"
	"strconv"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type Config struct {
	BoardRows    int
	BoardColumns int
	LogEnabled   bool // logs go to stderr, off by default so they don't mix with the board
}

var AppConfig *Config

func LoadConfig() *Config {
	boardRows := GetEnvAsInt("BOARD_ROWS", domain.DefaultRows)
	boardColumns := GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns)
	logEnabled := GetEnvAsBool("LOG_ENABLED", false)

	AppConfig = &Config{
		BoardRows:    boardRows,
		BoardColumns: boardColumns,
		LogEnabled:   logEnabled,
	}

	return AppConfig
}

// Validate fails fast on dimensions the board can't be built with
func (c *Config) Validate() error {
	_, err := domain.NewBoard(c.BoardRows, c.BoardColumns)
	return err
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
