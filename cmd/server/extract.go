package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/resume"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the service record found in a DD-214, VMET or resume file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		reader := resume.NewDocumentReader(zlog, config.LoadUploadConfig().OCREnabled)
		text, err := reader.ReadText(args[0], data)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resume.Extract(text))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
