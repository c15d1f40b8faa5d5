package main

import (
	"fmt"
	"strings"

	"sampleapp/frontend/pkg/cli"
	frontendtls "sampleapp/frontend/pkg/security/tls"

	"github.com/spf13/cobra"
)

var generateFlags struct {
	env    string
	hosts  string
	output string
	format string
}

var certsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TLS material for an environment",
	Long: `Generate a CA and a server certificate signed by it, written with the
file names the frontend expects for the environment:

  ca-<env>.crt.pem            CA bundle
  ca-<env>.key.pem            CA private key (0600)
  cert-<env>.crt.pem          server certificate
  key-<env>.pem               server private key (0600)
  internal-alb-<env>-ca.pem   outside development only; a copy of the CA

The material is for local testing. Real environments get their certificates
from the platform.

Examples:
  # Development material in ./tls
  frontend certs generate

  # Staging material with extra SANs, summary as JSON
  frontend certs generate --env staging --host "localhost,127.0.0.1" --format json`,
	Args: cobra.NoArgs,
	RunE: generateMaterial,
}

func init() {
	certsCmd.AddCommand(certsGenerateCmd)

	certsGenerateCmd.Flags().StringVar(&generateFlags.env, "env", "development", "environment name (VPC_NAME)")
	certsGenerateCmd.Flags().StringVar(&generateFlags.hosts, "host", "localhost,127.0.0.1", "comma-separated hostnames and IPs")
	certsGenerateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "tls", "output directory")
	certsGenerateCmd.Flags().StringVar(&generateFlags.format, "format", "text", "output format: text, json")
}

// generateSummary is what certs generate prints.
type generateSummary struct {
	Environment string   `json:"environment"`
	Hosts       []string `json:"hosts"`
	CA          string   `json:"ca"`
	CAKey       string   `json:"ca_key"`
	Cert        string   `json:"cert"`
	Key         string   `json:"key"`
	InternalCA  string   `json:"internal_ca,omitempty"`
}

func (s generateSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated TLS material for %q (hosts: %s)\n", s.Environment, strings.Join(s.Hosts, ", "))
	fmt.Fprintf(&b, "  CA:          %s\n", s.CA)
	fmt.Fprintf(&b, "  CA key:      %s\n", s.CAKey)
	fmt.Fprintf(&b, "  Certificate: %s\n", s.Cert)
	fmt.Fprintf(&b, "  Key:         %s", s.Key)
	if s.InternalCA != "" {
		fmt.Fprintf(&b, "\n  Internal CA: %s", s.InternalCA)
	}
	return b.String()
}

func generateMaterial(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(generateFlags.format)
	if err != nil {
		return err
	}

	hosts := splitHosts(generateFlags.hosts)
	if len(hosts) == 0 {
		return cli.NewConfigError("host", "at least one host is required")
	}

	env := frontendtls.ParseEnvironment(generateFlags.env)
	files, err := frontendtls.WriteMaterial(generateFlags.output, env, hosts)
	if err != nil {
		return cli.NewCommandError("certs generate", err)
	}

	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), generateSummary{
		Environment: env.Name(),
		Hosts:       hosts,
		CA:          files.CA,
		CAKey:       files.CAKey,
		Cert:        files.Cert,
		Key:         files.Key,
		InternalCA:  files.InternalCA,
	})
}

func splitHosts(s string) []string {
	var hosts []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
