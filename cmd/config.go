package cmd

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	StrictTransitions        bool
	StatisticsReportSchedule string
}

// ConfigFromEnv reads the configuration from the process environment.
// A malformed STRICT_TRANSITIONS value is reported as an error; an unset one means false.
func ConfigFromEnv() (Config, error) {
	config := Config{
		HTTPPort:                 os.Getenv("HTTP_PORT"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   os.Getenv("DB_PORT"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                os.Getenv("DB_SSLMODE"),
		StatisticsReportSchedule: os.Getenv("STATISTICS_REPORT_SCHEDULE"),
	}

	if raw := os.Getenv("STRICT_TRANSITIONS"); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("STRICT_TRANSITIONS: %w", err)
		}
		config.StrictTransitions = strict
	}

	return config, nil
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
