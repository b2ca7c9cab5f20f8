package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/pwcheck/internal/analysis"
	"github.com/muurk/pwcheck/internal/ui"
)

func newHealthCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the analysis service is reachable",
		Long: `Probe the analysis service's /health endpoint.

Useful for verifying --api-url before starting the interactive form.`,
		Example: `  pwcheck health
  pwcheck health --api-url http://10.0.0.5:8000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.newClient()
			if err != nil {
				return err
			}

			p := ui.NewPrinter(cmd.OutOrStdout())
			endpoint := client.Endpoint(analysis.HealthPath)

			if err := client.Health(cmd.Context()); err != nil {
				p.PrintError("Health Check", err)
				return errReported
			}

			p.Println(fmt.Sprintf("%s Analysis service is healthy (%s)",
				ui.SuccessStyle.Render(ui.SuccessMarker), endpoint))
			return nil
		},
	}
}
