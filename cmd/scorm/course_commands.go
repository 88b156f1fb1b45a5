package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"scormd/internal/api"
)

func newCourseCommand(ctx *commandContext) *cobra.Command {
	courseCmd := &cobra.Command{
		Use:   "course",
		Short: "Manage content packages",
	}

	courseCmd.AddCommand(newCourseUploadCommand(ctx))
	courseCmd.AddCommand(newCourseListCommand(ctx))
	courseCmd.AddCommand(newCourseShowCommand(ctx))
	courseCmd.AddCommand(newCourseDeleteCommand(ctx))

	return courseCmd
}

func newCourseUploadCommand(ctx *commandContext) *cobra.Command {
	var title string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "upload <package.zip>",
		Short: "Upload and ingest a content package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read package: %w", err)
			}

			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			course, err := c.UploadCourse(cmd.Context(), title, filepath.Base(args[0]), archive)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, course)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ingested %q\n", course.Title)
			fmt.Fprintf(out, "  ID:     %s\n", course.ID)
			fmt.Fprintf(out, "  Launch: %s\n", course.LaunchHref)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Course title (derived from the filename when omitted)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCourseListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ingested courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			courses, err := c.ListCourses(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, courses)
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses ingested")
				return nil
			}

			rows := make([][]string, 0, len(courses))
			for _, course := range courses {
				rows = append(rows, []string{
					course.ID,
					course.Title,
					course.LaunchHref,
					course.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Title", "Launch", "Created"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCourseShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course and its launchable items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			detail, err := c.GetCourse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, detail)
			}
			printCourseDetail(cmd, detail)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printCourseDetail(cmd *cobra.Command, detail *api.CourseDetail) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Course %s\n", detail.ID)
	fmt.Fprintf(out, "  Title:   %s\n", detail.Title)
	if detail.OrgIdentifier != "" {
		fmt.Fprintf(out, "  Org:     %s\n", detail.OrgIdentifier)
	}
	fmt.Fprintf(out, "  Launch:  %s\n", detail.LaunchHref)
	fmt.Fprintf(out, "  Content: %s\n", detail.BasePath)
	fmt.Fprintf(out, "  Created: %s\n", detail.CreatedAt.Local().Format("2006-01-02 15:04"))

	if len(detail.SCOs) == 0 {
		fmt.Fprintln(out, "  No launchable items")
		return
	}
	rows := make([][]string, 0, len(detail.SCOs))
	for _, sco := range detail.SCOs {
		launch := sco.LaunchHref
		if sco.Parameters != "" {
			launch += sco.Parameters
		}
		rows = append(rows, []string{sco.ID, sco.Identifier, launch})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Identifier", "Launch"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
}

func newCourseDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <course-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a course, its tracking data, and its extracted content",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.apiClient()
			if err != nil {
				return err
			}
			if err := c.DeleteCourse(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %s\n", args[0])
			return nil
		},
	}
}
