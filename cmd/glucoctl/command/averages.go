package command

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/glucoguide/summary"
	"github.com/tidepool-org/glucoguide/users"
)

var averagesCmd = &cobra.Command{
	Use:   "averages",
	Short: "Averages of historical data",
}

var averagesShowParams = struct {
	Username    string
	Granularity string
}{}

var averagesShowCmd = &cobra.Command{
	Use:   "show {username}",
	Args:  cobra.ExactArgs(1),
	Short: "Print the averages of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		averagesShowParams.Username = args[0]
		return Run(showAverages)
	},
}

var averagesReportParams = struct {
	Username string
	Output   string
}{}

var averagesReportCmd = &cobra.Command{
	Use:   "report {username} {output.xlsx}",
	Args:  cobra.ExactArgs(2),
	Short: "Write the averages of a user to a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		averagesReportParams.Username = args[0]
		averagesReportParams.Output = args[1]
		return Run(writeAveragesReport)
	},
}

func showAverages(service users.Service) error {
	if service.GetUserByUsername(context.TODO(), averagesShowParams.Username) == nil {
		return fmt.Errorf("user %s not found", averagesShowParams.Username)
	}

	if averagesShowParams.Granularity != "" && !slices.Contains(summary.Granularities, averagesShowParams.Granularity) {
		return fmt.Errorf("unknown granularity %s", averagesShowParams.Granularity)
	}

	averages := service.GetAverages(context.TODO(), averagesShowParams.Username)
	for _, granularity := range summary.Granularities {
		if averagesShowParams.Granularity != "" && averagesShowParams.Granularity != granularity {
			continue
		}

		buckets, _ := averages.ByGranularity(granularity)
		fmt.Printf("%s\n", granularity)
		buckets.Each(func(key string, average summary.Average) {
			fmt.Printf("  %-12s %6s %6s %6s\n", key, average.BloodGlucose, average.CarbIntake, average.Insulin)
		})
	}
	if averages.Skipped > 0 {
		fmt.Printf("Skipped %v observations with invalid dates\n", averages.Skipped)
	}

	return nil
}

func writeAveragesReport(service users.Service) error {
	profile := service.GetUserByUsername(context.TODO(), averagesReportParams.Username)
	if profile == nil {
		return fmt.Errorf("user %s not found", averagesReportParams.Username)
	}

	averages := service.GetAverages(context.TODO(), profile.Username)
	f, err := os.Create(averagesReportParams.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := summary.NewReport(profile.Username, profile, averages).Write(f); err != nil {
		return err
	}

	fmt.Printf("Report written to %s\n", averagesReportParams.Output)
	return nil
}

func init() {
	averagesShowCmd.Flags().StringVar(&averagesShowParams.Granularity, "granularity", "", "Only print one of daily, weekly or monthly")

	averagesCmd.AddCommand(averagesShowCmd)
	averagesCmd.AddCommand(averagesReportCmd)
	rootCmd.AddCommand(averagesCmd)
}
