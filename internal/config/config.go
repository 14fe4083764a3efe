package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"user-management-api/pkg/utils"
)

type AuthConfig struct {
	Token struct {
		Expiry string `yaml:"expiry"`
	} `yaml:"token"`
	PasswordStrength struct {
		MinLength int `yaml:"min_length"`
	} `yaml:"password_strength"`
	Bcrypt struct {
		Cost int `yaml:"cost"`
	} `yaml:"bcrypt"`
}

// TokenExpiry parses the configured token lifetime, defaulting to one hour.
func (c AuthConfig) TokenExpiry() time.Duration {
	expiry, err := time.ParseDuration(c.Token.Expiry)
	if err != nil || expiry <= 0 {
		return time.Hour
	}
	return expiry
}

type EnvConfig struct {
	Server struct {
		Port        string
		Environment string
	}
	DB struct {
		Driver string
		Host   string
		Port   string
		User   string
		Pass   string
		Name   string
	}
	JWT struct {
		Secret string
	}
	CORS struct {
		Origins string
	}
}

var (
	Auth AuthConfig
	Env  EnvConfig
)

// LoadConfig reads .env, validates required environment variables against
// the given rule table and loads the auth policy yaml. It fails startup on
// a missing JWT secret or malformed values.
func LoadConfig(rules []utils.ValidationRule) error {
	if err := godotenv.Load(); err != nil {
		if utils.GetEnv("GO_ENV") != "production" {
			utils.LogWarn("config", ".env file not found")
		}
	}

	if err := utils.ValidateEnv(rules); err != nil {
		return err
	}

	Env.Server.Port = utils.GetEnv("PORT")
	Env.Server.Environment = utils.GetEnv("GO_ENV")
	Env.DB.Driver = utils.GetEnv("DB_DRIVER")
	Env.DB.Host = utils.GetEnvOrDefault("DB_HOST", "localhost")
	Env.DB.Port = utils.GetEnv("DB_PORT")
	Env.DB.User = utils.GetEnv("DB_USER")
	Env.DB.Pass = utils.GetEnv("DB_PASS")
	Env.DB.Name = utils.GetEnv("DB_NAME")
	Env.JWT.Secret = utils.GetEnv("JWT_SECRET")
	Env.CORS.Origins = utils.GetEnvOrDefault("CORS_ORIGINS", "*")

	authFile, err := os.ReadFile("config/auth.yaml")
	if err != nil {
		return fmt.Errorf("failed to read auth config: %w", err)
	}
	if err := yaml.Unmarshal(authFile, &Auth); err != nil {
		return fmt.Errorf("failed to parse auth config: %w", err)
	}

	if Auth.PasswordStrength.MinLength <= 0 {
		Auth.PasswordStrength.MinLength = 6
	}

	return nil
}
