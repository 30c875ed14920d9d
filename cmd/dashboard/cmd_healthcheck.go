package main

import (
	"context"
	"fmt"
	"time"

	"rescue-dashboard/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var (
	healthURL     string
	healthTimeout time.Duration
)

// healthcheckCmd sirve como HEALTHCHECK del contenedor
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe a running dashboard's /health endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHealthcheck(cmd.Context(), cmd, healthURL, healthTimeout)
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthURL, "url", "http://localhost:8080", "dashboard base URL")
	healthcheckCmd.Flags().DurationVar(&healthTimeout, "timeout", 3*time.Second, "request timeout")
}

type healthStatus struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func runHealthcheck(ctx context.Context, cmd *cobra.Command, baseURL string, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return err
	}

	var out healthStatus
	if err := c.GetJSON(ctx, "/health", &out); err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	if out.Status != "ok" {
		return fmt.Errorf("healthcheck: status %q", out.Status)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok (store: %s)\n", out.Store)
	return nil
}
