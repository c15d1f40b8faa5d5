package main

import (
	"context"
	"fmt"
	"os"

	"sampleapp/frontend/pkg/cli"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frontend <config-file> <tls-key-file>",
	Short: "Sample application frontend",
	Long: `Frontend serves the sample application over HTTPS and relays service
requests to the backend through the internal load balancer.

The first argument is the application configuration file (JSON, or YAML when
it ends in .yaml or .yml) and must define "greeting". The second argument is
the PEM private key matching cert-<env>.crt.pem.

Environment:
  VPC_NAME          deployment environment (default "development")
  PORT              TLS listen port (default 3000)
  CONTEXT_PATH      base path of every route (default "/sample-app-frontend")
  INTERNAL_ALB_URL  host of the backend load balancer (default "localhost")
  BACKEND_PORT      port of the backend (default 80)

Examples:
  # Start in development
  frontend config.json tls/key-development.pem

  # Start in staging with the ops listener enabled
  VPC_NAME=staging FRONTEND_OPS_ADDRESS=127.0.0.1:9090 \
    frontend config.json /etc/frontend/key.pem`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
	RunE:          runFrontend,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cli.IsConfigError(err) {
			fmt.Fprintln(os.Stderr, "Run 'frontend --help' for usage.")
		}
		os.Exit(1)
	}
}
