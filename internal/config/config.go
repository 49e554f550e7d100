// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Discord     DiscordConfig
	AWS         AWSConfig
	Tables      TableConfig
	RateLimit   RateLimitConfig
}

type DiscordConfig struct {
	Token        string
	Prefix       string
	AdminRoleIDs []string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type TableConfig struct {
	MemberPoints string
	Store        string
	Purchases    string
}

type RateLimitConfig struct {
	CommandsPerMinute int
	Burst             int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Discord: DiscordConfig{
			Token:        getEnv("DISCORD_TOKEN", ""),
			Prefix:       getEnv("COMMAND_PREFIX", "~"),
			AdminRoleIDs: getEnvAsSlice("ADMIN_ROLE_IDS", []string{"449076533223751691", "778454540814909472"}),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Tables: TableConfig{
			MemberPoints: getEnv("TABLE_MEMBER_POINTS", "TPCMemberPoints"),
			Store:        getEnv("TABLE_STORE", "TPCStore"),
			Purchases:    getEnv("TABLE_PURCHASES", "TPCPurchases"),
		},
		RateLimit: RateLimitConfig{
			CommandsPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 5),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}

	if c.Discord.Prefix == "" {
		return fmt.Errorf("COMMAND_PREFIX must not be empty")
	}

	if len(c.Discord.AdminRoleIDs) == 0 {
		return fmt.Errorf("ADMIN_ROLE_IDS must list at least one role")
	}

	if c.RateLimit.CommandsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var parts []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
