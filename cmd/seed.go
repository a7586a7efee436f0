package cmd

import (
	"fmt"
	"os"

	"news-forum-api/seed"

	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset every table and load fixture data",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadSeedData(seedFile)
		if err != nil {
			return err
		}

		_, logger, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		return seed.Seed(cmd.Context(), db, data, logger)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML fixture file (defaults to the bundled data)")
	RootCmd.AddCommand(seedCmd)
}

func loadSeedData(path string) (*seed.Data, error) {
	if path == "" {
		return seed.Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return seed.Parse(raw)
}
