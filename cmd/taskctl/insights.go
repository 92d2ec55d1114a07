package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"smart-task-dashboard/internal/insight"
	"smart-task-dashboard/internal/model"
)

type insightsFlags struct {
	file string
	now  string
}

func newInsightsCmd() *cobra.Command {
	var f insightsFlags
	cmd := &cobra.Command{
		Use:     "insights",
		Short:   "Print the productivity report for a JSON task list",
		Example: `  taskctl insights --file tasks.json --now 2024-05-01T10:00:00Z`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsights(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "JSON array of tasks, - for stdin")
	cmd.Flags().StringVar(&f.now, "now", "", "evaluate overdue tasks as of this RFC3339 instant")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runInsights(cmd *cobra.Command, f insightsFlags) error {
	if f.file == "" {
		return errors.New("--file is required")
	}

	now := time.Now()
	if f.now != "" {
		t, err := time.Parse(time.RFC3339, f.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		now = t
	}

	tasks, err := readTasks(cmd.InOrStdin(), f.file)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), insight.Aggregate(tasks, now))
}

func readTasks(stdin io.Reader, path string) ([]model.Task, error) {
	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open tasks: %w", err)
		}
		defer file.Close()
		r = file
	}

	var tasks []model.Task
	if err := json.NewDecoder(r).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}
