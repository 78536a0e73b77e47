package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/identity"
	"github.com/abhisek/quizcraft/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		user, _ := cmd.Flags().GetString("user")

		ctx := context.Background()
		if user == "" {
			var ok bool
			user, ok = identity.NewEnvProvider().CurrentUserID(ctx)
			if !ok {
				return fmt.Errorf("no user configured; set QUIZCRAFT_USER_ID or pass --user")
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo := s.AttemptRepo()
		attempts, err := repo.ListByUser(ctx, user, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Printf("No quiz attempts recorded for %s.\n", user)
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-24s  %7s  %6s\n",
			"Date", "Level", "Types", "Score", "Pct")
		fmt.Println(strings.Repeat("─", 72))

		for _, a := range attempts {
			types := a.QuizType
			if len(types) > 24 {
				types = types[:24]
			}
			fmt.Printf("%-19s  %-8s  %-24s  %3d/%-3d  %5.0f%%\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				a.Difficulty,
				types,
				a.CorrectAnswers,
				a.TotalQuestions,
				a.ScorePercentage,
			)
		}

		stats, err := repo.Stats(ctx, user)
		if err != nil {
			return fmt.Errorf("aggregate attempts: %w", err)
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%d attempts, %d/%d questions correct, average %.0f%%\n",
			stats.Attempts, stats.TotalCorrect, stats.TotalQuestions, stats.AvgScore)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().StringP("user", "u", "", "User ID (defaults to QUIZCRAFT_USER_ID)")
}
