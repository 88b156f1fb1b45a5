package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scormd/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show server reachability, store counts, and environment checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			serverUp := c.Health(cmd.Context()) == nil

			if jsonOutput {
				payload := map[string]any{
					"running":   serverUp,
					"preflight": preflight.RunAll(cfg),
				}
				if serverUp {
					if stats, err := c.Stats(cmd.Context()); err == nil {
						payload["stats"] = stats
					}
				}
				return writeJSON(cmd, payload)
			}

			for _, line := range renderSectionHeader("Server", colorize) {
				fmt.Fprintln(out, line)
			}
			if serverUp {
				fmt.Fprintln(out, renderStatusLine("scormd", statusOK, "Running at "+cfg.Paths.APIBind, colorize))
				if stats, err := c.Stats(cmd.Context()); err == nil {
					fmt.Fprintln(out, renderStatusLine("Courses", statusInfo, fmt.Sprintf("%d", stats.Courses), colorize))
					fmt.Fprintln(out, renderStatusLine("Attempts", statusInfo,
						fmt.Sprintf("%d (%d completed)", stats.Attempts, stats.AttemptsCompleted), colorize))
				}
			} else {
				fmt.Fprintln(out, renderStatusLine("scormd", statusWarn, "Not running (run `scorm serve`)", colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range preflight.RunAll(cfg) {
				kind := statusError
				if result.Passed {
					kind = statusOK
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
