package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/glucoguide/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "GlucoGuide users",
	Long:  "The users command is used to inspect, import and seed user profiles",
}

var usersGetParams = struct {
	Username string
}{}

var usersGetCmd = &cobra.Command{
	Use:   "get {username}",
	Args:  cobra.ExactArgs(1),
	Short: "Print a user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		usersGetParams.Username = args[0]
		return Run(getUser)
	},
}

var usersImportParams = struct {
	Path string
}{}

var usersImportCmd = &cobra.Command{
	Use:   "import {path}",
	Args:  cobra.ExactArgs(1),
	Short: "Replace all users with those in a CSV file",
	Long:  "The import command replaces all users with the valid rows of a CSV file and generates their historical data",
	RunE: func(cmd *cobra.Command, args []string) error {
		usersImportParams.Path = args[0]
		return Run(importUsers)
	},
}

var usersInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the demo users if no users exist",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(initializeDatabase) },
}

func getUser(service users.Service) error {
	profile := service.GetUserByUsername(context.TODO(), usersGetParams.Username)
	if profile == nil {
		return fmt.Errorf("user %s not found", usersGetParams.Username)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(profile)
}

func importUsers(service users.Service) error {
	imported := service.ImportUsersFromCSV(context.TODO(), usersImportParams.Path)
	if imported == 0 {
		return fmt.Errorf("no users were imported from %s", usersImportParams.Path)
	}

	fmt.Printf("Imported %v users\n", imported)
	return nil
}

func initializeDatabase(service users.Service, repo users.Repository) error {
	service.InitializeDatabase(context.TODO())

	list, err := repo.List(context.TODO())
	if err != nil {
		return err
	}
	for _, profile := range list {
		fmt.Printf("%s %s\n", profile.Username, profile.ControlLevel)
	}
	fmt.Printf("Found %v users\n", len(list))

	return nil
}

func init() {
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersImportCmd)
	usersCmd.AddCommand(usersInitCmd)
	rootCmd.AddCommand(usersCmd)
}
