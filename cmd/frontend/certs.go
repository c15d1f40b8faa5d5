package main

import (
	"github.com/spf13/cobra"
)

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Manage TLS material",
	Long: `Manage the TLS material the frontend loads at startup.

Subcommands:
  generate - Generate a CA and server certificate for an environment
  info     - Display certificate details

Examples:
  # Generate development material
  frontend certs generate --env development --output tls

  # Inspect the staging server certificate
  frontend certs info tls/cert-staging.crt.pem`,
}

func init() {
	rootCmd.AddCommand(certsCmd)
}
