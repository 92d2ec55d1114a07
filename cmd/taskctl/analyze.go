package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-task-dashboard/internal/analyzer"
	"smart-task-dashboard/pkg/datemath"
)

type analyzeFlags struct {
	date     string
	timezone string
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Print the category, priority, due date and keywords detected in text",
		Example: `  taskctl analyze "Urgent: finish project report tomorrow"
  taskctl analyze "Clean the house this weekend" --date 2024-05-01 --tz Europe/Berlin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, f, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&f.date, "date", "", "treat this date (YYYY-MM-DD) as today")
	cmd.Flags().StringVar(&f.timezone, "tz", "UTC", "timezone that today is resolved in")
	return cmd
}

func runAnalyze(cmd *cobra.Command, f analyzeFlags, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("text must not be empty")
	}

	loc, err := loadLocation(f.timezone)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	if f.date != "" {
		d, err := datemath.ParseDate(f.date)
		if err != nil {
			return err
		}
		now = d.In(loc)
	}

	return writeJSON(cmd.OutOrStdout(), analyzer.Analyze(text, now))
}
