package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/glucoguide/observations"
	"github.com/tidepool-org/glucoguide/users"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Historical data",
	Long:  "The history command is used to manage the synthetic historical data of users",
}

var historyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate missing historical data for all users",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(generateHistory) },
}

func generateHistory(repo users.Repository, generator observations.Generator, history observations.Repository) error {
	list, err := repo.List(context.TODO())
	if err != nil {
		return err
	}

	usernames := users.Usernames(list)
	generator.GenerateAll(context.TODO(), usernames)

	for _, username := range usernames {
		exists, err := history.Exists(context.TODO(), username)
		if err != nil {
			return err
		}
		fmt.Printf("%s %t\n", username, exists)
	}
	fmt.Printf("Processed %v users\n", len(usernames))

	return nil
}

func init() {
	historyCmd.AddCommand(historyGenerateCmd)
	rootCmd.AddCommand(historyCmd)
}
