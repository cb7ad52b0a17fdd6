package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vetlink/vetlink-api/internal/matching"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a job posting, both given as JSON files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobFile, _ := cmd.Flags().GetString("job")
		candidateFile, _ := cmd.Flags().GetString("candidate")

		var job matching.Job
		if err := readJSON(jobFile, &job); err != nil {
			return err
		}
		var candidate matching.Candidate
		if err := readJSON(candidateFile, &candidate); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(matching.Score(job, candidate))
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("job", "", "JSON file with the job posting")
	scoreCmd.Flags().String("candidate", "", "JSON file with the candidate profile")
	_ = scoreCmd.MarkFlagRequired("job")
	_ = scoreCmd.MarkFlagRequired("candidate")
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
