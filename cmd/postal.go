package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapq/mapq/mapzen"
)

var parseFormat string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <address>",
	Short: "Split an address into labeled components",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

// expandCmd represents the expand command
var expandCmd = &cobra.Command{
	Use:   "expand <address>",
	Short: "Normalize an address and expand abbreviations",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpand,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(expandCmd)

	parseCmd.Flags().StringVar(&parseFormat, "format", "", "response format")
}

func runParse(cmd *cobra.Command, args []string) error {
	var opts *mapzen.ParseOptions
	if parseFormat != "" {
		opts = &mapzen.ParseOptions{Format: parseFormat}
	}

	components, err := client.Parse(context.Background(), args[0], opts)
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(components)
	}

	for _, component := range components {
		fmt.Printf("%-16s %s\n", component.Label+":", component.Value)
	}
	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	expansions, err := client.Expand(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(expansions)
	}

	for _, expansion := range expansions {
		fmt.Println(expansion)
	}
	return nil
}
