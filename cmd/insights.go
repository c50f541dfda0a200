package cmd

import (
	"fmt"

	"paydown/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Plain-language findings about your debt position",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	report, _, err := buildReport()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("INSIGHTS"))
	fmt.Println()

	if len(report.Insights) == 0 {
		fmt.Println("  Nothing to report.")
		return nil
	}

	for _, ins := range report.Insights {
		title := lipgloss.NewStyle().Bold(true).Foreground(cli.InsightColor(ins.Type)).Render(ins.Title)
		fmt.Printf("  %s %s\n", ins.Icon, title)
		fmt.Printf("     %s\n\n", ins.Body)
	}

	return nil
}
