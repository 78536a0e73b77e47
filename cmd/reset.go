package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizcraft/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all quiz attempts and LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This deletes all saved quiz attempts and LLM events. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
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

		ctx := context.Background()
		attempts, err := s.Client().QuizAttempt.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		events, err := s.Client().LLMRequestEvent.Delete().Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete events: %w", err)
		}

		fmt.Printf("Deleted %d attempts and %d LLM events.\n", attempts, events)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
