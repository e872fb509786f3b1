package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mapq/mapq/filter"
	"github.com/mapq/mapq/mapzen"
)

var (
	searchSize    int
	searchCountry string
	searchSources []string
	searchLayers  []string
	focusPoint    string
	filterExpr    string
	inputFile     string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Geocode a place name or address",
	Long: `Find the geographic coordinates of a location. Results can be narrowed
with boundary and focus options, and filtered client-side with an expression,
e.g. --filter 'Confidence > 0.8 && Layer == "venue"'.

With --input, one search is run per line of the file, with bounded
concurrency.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

// autocompleteCmd represents the autocomplete command
var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete <text>",
	Short: "Search with partial input",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutocomplete,
}

// reverseCmd represents the reverse command
var reverseCmd = &cobra.Command{
	Use:   "reverse <lat,lon>",
	Short: "Find places near a coordinate",
	Args:  cobra.ExactArgs(1),
	RunE:  runReverse,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(autocompleteCmd)
	rootCmd.AddCommand(reverseCmd)

	searchCmd.Flags().IntVar(&searchSize, "size", 0, "maximum number of results")
	searchCmd.Flags().StringVar(&searchCountry, "country", "", "restrict to an ISO country code")
	searchCmd.Flags().StringSliceVar(&searchSources, "sources", nil, "data sources (e.g. openstreetmap,geonames)")
	searchCmd.Flags().StringSliceVar(&searchLayers, "layers", nil, "place types (e.g. venue,address,street)")
	searchCmd.Flags().StringVar(&focusPoint, "focus", "", "focus point as lat,lon")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
	searchCmd.Flags().StringVar(&inputFile, "input", "", "file with one search text per line")

	autocompleteCmd.Flags().StringVar(&searchCountry, "country", "", "restrict to an ISO country code")
	autocompleteCmd.Flags().StringVar(&focusPoint, "focus", "", "focus point as lat,lon")

	reverseCmd.Flags().IntVar(&searchSize, "size", 0, "maximum number of results")
	reverseCmd.Flags().StringVar(&searchCountry, "country", "", "restrict to an ISO country code")
	reverseCmd.Flags().StringSliceVar(&searchLayers, "layers", nil, "place types (e.g. venue,address,street)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts, err := searchOptions()
	if err != nil {
		return err
	}

	var resultFilter *filter.Filter
	if filterExpr != "" {
		resultFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	ctx := context.Background()

	if inputFile != "" {
		return runBatchSearch(ctx, cmd, opts, resultFilter)
	}

	if len(args) == 0 {
		return fmt.Errorf("search text or --input file required")
	}

	collection, err := client.Search(ctx, args[0], opts)
	if err != nil {
		return err
	}

	features := collection.Features
	if resultFilter != nil {
		features, err = resultFilter.Apply(collection)
		if err != nil {
			return err
		}
	}

	if jsonOutput(cmd) {
		return printJSON(features)
	}
	printFeatures(features)
	return nil
}

// runBatchSearch geocodes every line of the input file with bounded
// concurrency, printing results in input order.
func runBatchSearch(ctx context.Context, cmd *cobra.Command, opts *mapzen.SearchOptions, resultFilter *filter.Filter) error {
	queries, err := readLines(inputFile)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", inputFile)
	}

	logger.Info().Int("queries", len(queries)).Int("concurrency", cfg.Search.Concurrency).
		Msg("Running batch search")

	results := make([][]mapzen.Feature, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Search.Concurrency)

	var mu sync.Mutex
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			collection, err := client.Search(ctx, query, opts)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}

			features := collection.Features
			if resultFilter != nil {
				features, err = resultFilter.Apply(collection)
				if err != nil {
					return err
				}
			}

			mu.Lock()
			results[i] = features
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(results)
	}
	for i, query := range queries {
		fmt.Printf("\n== %s ==\n", query)
		printFeatures(results[i])
	}
	return nil
}

func runAutocomplete(cmd *cobra.Command, args []string) error {
	opts := &mapzen.AutocompleteOptions{
		BoundaryCountry: searchCountry,
	}
	if focusPoint != "" {
		point, err := parseLatLon(focusPoint)
		if err != nil {
			return err
		}
		opts.FocusPoint = &point
	}

	collection, err := client.Autocomplete(context.Background(), args[0], opts)
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(collection.Features)
	}
	printFeatures(collection.Features)
	return nil
}

func runReverse(cmd *cobra.Command, args []string) error {
	point, err := parseLatLon(args[0])
	if err != nil {
		return err
	}

	collection, err := client.Reverse(context.Background(), point.Lat, point.Lon, &mapzen.ReverseOptions{
		Size:            searchSize,
		BoundaryCountry: searchCountry,
		Layers:          searchLayers,
	})
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(collection.Features)
	}
	printFeatures(collection.Features)
	return nil
}

func searchOptions() (*mapzen.SearchOptions, error) {
	opts := &mapzen.SearchOptions{
		Size:            searchSize,
		BoundaryCountry: searchCountry,
		Sources:         searchSources,
		Layers:          searchLayers,
	}

	// Fall back to configured defaults
	if opts.Size == 0 {
		opts.Size = cfg.Search.Size
	}
	if opts.BoundaryCountry == "" {
		opts.BoundaryCountry = cfg.Search.Country
	}
	if len(opts.Sources) == 0 {
		opts.Sources = cfg.Search.Sources
	}
	if len(opts.Layers) == 0 {
		opts.Layers = cfg.Search.Layers
	}

	if focusPoint != "" {
		point, err := parseLatLon(focusPoint)
		if err != nil {
			return nil, err
		}
		opts.FocusPoint = &point
	}

	return opts, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
