package main

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"
	"time"

	"sampleapp/frontend/pkg/cli"
	frontendtls "sampleapp/frontend/pkg/security/tls"

	"github.com/spf13/cobra"
)

var infoFlags struct {
	format string
}

var certsInfoCmd = &cobra.Command{
	Use:   "info <cert-file>",
	Short: "Display certificate details",
	Long: `Display the subject, issuer, validity window and SANs of the first
certificate in a PEM file, and how many days remain until it expires.

Examples:
  frontend certs info tls/cert-development.crt.pem
  frontend certs info --format json tls/ca-staging.crt.pem`,
	Args: cobra.ExactArgs(1),
	RunE: displayCertInfo,
}

func init() {
	certsCmd.AddCommand(certsInfoCmd)

	certsInfoCmd.Flags().StringVar(&infoFlags.format, "format", "text", "output format: text, json")
}

type certInfoView struct {
	File string `json:"file"`
	*frontendtls.CertificateInfo
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Warning         string `json:"warning,omitempty"`
}

func (v certInfoView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Certificate: %s\n", v.File)
	fmt.Fprintf(&b, "  Subject:    %s\n", v.Subject)
	fmt.Fprintf(&b, "  Issuer:     %s\n", v.Issuer)
	fmt.Fprintf(&b, "  Serial:     %s\n", v.SerialNumber)
	fmt.Fprintf(&b, "  Not Before: %s\n", v.NotBefore.Format(time.RFC3339))
	fmt.Fprintf(&b, "  Not After:  %s (%d days)\n", v.NotAfter.Format(time.RFC3339), v.DaysUntilExpiry)
	if len(v.DNSNames) > 0 {
		fmt.Fprintf(&b, "  DNS Names:  %s\n", strings.Join(v.DNSNames, ", "))
	}
	if len(v.IPAddresses) > 0 {
		fmt.Fprintf(&b, "  IPs:        %s\n", strings.Join(v.IPAddresses, ", "))
	}
	fmt.Fprintf(&b, "  CA:         %t", v.IsCA)
	if v.Warning != "" {
		fmt.Fprintf(&b, "\n  Warning:    %s", v.Warning)
	}
	return b.String()
}

func displayCertInfo(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(infoFlags.format)
	if err != nil {
		return err
	}

	certFile := args[0]
	certPEM, err := os.ReadFile(certFile)
	if err != nil {
		return fmt.Errorf("failed to read certificate: %w", err)
	}

	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		return fmt.Errorf("no PEM certificate found in %s", certFile)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return fmt.Errorf("failed to parse certificate: %w", err)
	}

	days, warning := frontendtls.CheckCertificateExpiration(cert)
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), certInfoView{
		File:            certFile,
		CertificateInfo: frontendtls.ExtractCertificateInfo(cert),
		DaysUntilExpiry: days,
		Warning:         warning,
	})
}
