package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

// CreateGameResult is the session-creation response
type CreateGameResult struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// JoinGameResult is the join response
type JoinGameResult struct {
	Success bool `json:"success"`
	Pilots  map[string]struct {
		ID         string `json:"id"`
		PictureURL string `json:"picture_url"`
	} `json:"pilots"`
	SecretPilot struct {
		ID         string `json:"id"`
		PictureURL string `json:"picture_url"`
	} `json:"secret_pilot"`
}

func newGuessWhoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guesswho",
		Short: "Guess-who session operations",
	}

	cmd.AddCommand(newGuessWhoCreateCmd())
	cmd.AddCommand(newGuessWhoJoinCmd())

	return cmd
}

func newGuessWhoCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <championship:year> [championship:year...]",
		Short: "Create a session from championship-year selections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var selections [][]string
			for _, arg := range args {
				name, year, ok := strings.Cut(arg, ":")
				if !ok {
					return fmt.Errorf("selection %q must be championship:year", arg)
				}
				selections = append(selections, []string{name, year})
			}
			body := map[string]any{"championships": selections}

			var result CreateGameResult
			if err := client.Post("/api/v1/guesswho/games", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGuessWhoJoinCmd() *cobra.Command {
	var player int

	cmd := &cobra.Command{
		Use:   "join <session-id>",
		Short: "Join a session as player 1 or 2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/guesswho/join?session=%s&player=%d",
				url.QueryEscape(args[0]), player)

			var result JoinGameResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&player, "player", "p", 1, "Player slot (1 or 2)")

	return cmd
}
