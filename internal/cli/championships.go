package cli

import (
	"github.com/spf13/cobra"
)

// ChampionshipsResult maps championship names to their available years
type ChampionshipsResult struct {
	Success       bool                `json:"success"`
	Championships map[string][]string `json:"championships"`
}

func newChampionshipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "championships",
		Short: "List championships and their available years",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ChampionshipsResult
			if err := client.Get("/api/v1/championships", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
