// Package config provides configuration loading for the sample-app frontend.
//
// There are two sources of configuration:
//
//  1. Settings, read from environment variables once at startup:
//     settings, err := config.LoadSettings()
//
//  2. AppConfig, read from the file named on the command line:
//     app, err := config.LoadAppConfig("/etc/frontend/config.json")
//
// # Environment Variables
//
// The deployment contract shared with the rest of the stack:
//
//   - VPC_NAME selects the deployment environment (default "development")
//   - PORT is the listen port (default 3000)
//   - CONTEXT_PATH is the URL base path (default "/sample-app-frontend")
//   - INTERNAL_ALB_URL is the backend host (default "localhost:<PORT>")
//   - BACKEND_PORT is the backend port (default 80)
//
// Process tuning uses the FRONTEND_ prefix, e.g. FRONTEND_LOG_LEVEL or
// FRONTEND_OPS_ADDRESS. An empty variable counts as unset.
//
// # Validation
//
// Settings are validated after defaults are applied. All problems are
// reported together:
//
//	configuration validation failed with 2 errors:
//	  - PORT: port must be between 1 and 65535, got 70000
//	  - FRONTEND_CLIENT_AUTH: must be one of none, request, verify_if_given, require; got "maybe"
//
// # App Config File
//
// JSON is the primary format; a .yaml or .yml extension switches to YAML.
// The only required field is greeting:
//
//	{"greeting": "Hello from the frontend"}
//
// Both Settings and AppConfig are immutable once loaded; there is no reload.
package config
