package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mapq/mapq/mapzen"
)

var costing string

// routeCmd represents the route command
var routeCmd = &cobra.Command{
	Use:   "route <lat,lon> <lat,lon>",
	Short: "Compute a route between two points",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringVar(&costing, "costing", "", "costing strategy (default auto_shorter)")
}

func runRoute(cmd *cobra.Command, args []string) error {
	from, err := parseLatLon(args[0])
	if err != nil {
		return err
	}
	to, err := parseLatLon(args[1])
	if err != nil {
		return err
	}

	var opts *mapzen.RouteOptions
	if costing != "" {
		opts = &mapzen.RouteOptions{Costing: costing}
	}

	route, err := client.Route(context.Background(), from, to, opts)
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(route)
	}

	trip := route.Trip
	fmt.Printf("Route (%s): %.1f %s, %.0f min\n",
		costingLabel(), trip.Summary.Length, trip.Units, trip.Summary.Time/60)

	for _, leg := range trip.Legs {
		for _, maneuver := range leg.Maneuvers {
			fmt.Printf("  • %s", maneuver.Instruction)
			if len(maneuver.StreetNames) > 0 {
				fmt.Printf(" (%s)", strings.Join(maneuver.StreetNames, ", "))
			}
			fmt.Println()
		}
	}

	return nil
}

func costingLabel() string {
	if costing != "" {
		return costing
	}
	return "auto_shorter"
}
