package constants

import (
	"user-management-api/pkg/utils"
)

var EnvValidationRules = []utils.ValidationRule{
	// Server validation
	{
		Variable: "PORT",
		Default:  "3001",
		Rule:     utils.IsValidPort,
		Message:  "server port is required and must be a valid port number",
	},
	{
		Variable: "GO_ENV",
		Default:  "development",
		Rule:     func(v string) bool { return v == "development" || v == "production" },
		Message:  "GO_ENV must be either 'development' or 'production'",
	},

	// Database validation
	{
		Variable: "DB_DRIVER",
		Default:  "postgres",
		Rule:     func(v string) bool { return v == "postgres" || v == "mysql" || v == "memory" },
		Message:  "DB_DRIVER must be one of 'postgres', 'mysql' or 'memory'",
	},
	{
		Variable: "DB_PORT",
		Default:  "5432",
		Rule:     utils.IsValidPort,
		Message:  "database port must be a valid port number",
	},
	{
		Variable: "DB_NAME",
		Default:  "user_management",
		Rule:     func(v string) bool { return v != "" },
		Message:  "database name is required",
	},

	// JWT validation
	{
		Variable: "JWT_SECRET",
		Rule:     func(v string) bool { return len(v) >= 32 },
		Message:  "JWT secret is required and must be at least 32 characters long",
	},
}
