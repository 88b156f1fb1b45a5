package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newAttemptCommand(ctx *commandContext) *cobra.Command {
	attemptCmd := &cobra.Command{
		Use:   "attempt",
		Short: "Manage tracking attempts",
	}
	attemptCmd.AddCommand(newAttemptNewCommand(ctx))
	return attemptCmd
}

func newAttemptNewCommand(ctx *commandContext) *cobra.Command {
	var courseID string
	var learnerID string
	var scoID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a tracking attempt and print its player URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if courseID == "" || learnerID == "" {
				return errors.New("--course and --learner are required")
			}

			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			attempt, err := c.CreateAttempt(cmd.Context(), courseID, learnerID, scoID)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, attempt)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Attempt %s\n", attempt.ID)
			fmt.Fprintf(out, "  Player: http://%s/player/%s\n", cfg.Paths.APIBind, attempt.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&courseID, "course", "", "Course identifier")
	cmd.Flags().StringVar(&learnerID, "learner", "", "Learner identifier")
	cmd.Flags().StringVar(&scoID, "sco", "", "Launch a specific SCO instead of the course default")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
