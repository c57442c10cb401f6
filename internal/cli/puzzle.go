package cli

import (
	"github.com/spf13/cobra"
)

// PuzzleResult is the driver-of-the-day response
type PuzzleResult struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Date      string `json:"date"`
}

// GuessResult is the guess-validation response
type GuessResult struct {
	Success bool `json:"success"`
}

// ScoreResult is the guess-scoring response
type ScoreResult struct {
	Success bool `json:"success"`
	Letters []struct {
		Letter string `json:"letter"`
		Status string `json:"status"`
	} `json:"letters"`
}

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Daily driver puzzle operations",
	}

	cmd.AddCommand(newPuzzleTodayCmd())
	cmd.AddCommand(newPuzzleGuessCmd())
	cmd.AddCommand(newPuzzleScoreCmd())

	return cmd
}

func newPuzzleTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the driver of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PuzzleResult
			if err := client.Get("/api/v1/puzzle/today", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPuzzleGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <name>",
		Short: "Check whether a name is a valid driver guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"guess": args[0]}

			var result GuessResult
			if err := client.Post("/api/v1/puzzle/guess", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPuzzleScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <guess> <solution>",
		Short: "Score a guess against a solution letter by letter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"guess": args[0], "solution": args[1]}

			var result ScoreResult
			if err := client.Post("/api/v1/puzzle/score", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
