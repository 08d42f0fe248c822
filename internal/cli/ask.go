package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/travelpal/travelpal/internal/concierge"
	"github.com/travelpal/travelpal/internal/dataset"
	"github.com/travelpal/travelpal/internal/geo"
	"github.com/travelpal/travelpal/internal/llm"
	"github.com/travelpal/travelpal/internal/models"
)

var askTimeout time.Duration

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Run a one-shot concierge turn from the terminal",
	Long: `Send a single message through the full concierge pipeline: model call,
directive parsing, geocoding and booking lookups. No history or stored
preferences are involved.

Examples:
  travelpal ask "Book a hotel in Jaipur"
  travelpal ask "What should I see in Goa?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 60*time.Second, "turn deadline")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	model, err := llm.NewModel(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create chat model: %w", err)
	}

	geocoder := geo.NewNominatimClient(cfg.NominatimURL, cfg.HTTPTimeout)
	hotels := geo.NewOverpassClient(cfg.OverpassURL, cfg.HTTPTimeout)

	svc := concierge.NewService(model, geocoder, hotels, dataset.MustLoad(), nil, nil)

	result, err := svc.Converse(ctx, args[0], nil, models.Preferences{})
	if err != nil {
		return fmt.Errorf("concierge turn: %w", err)
	}

	printResult(cmd.OutOrStdout(), result, verbose)
	return nil
}

// printResult writes a turn's outcome. Verbose mode adds coordinates,
// prices and descriptions to the listing lines.
func printResult(w io.Writer, result *concierge.Result, verbose bool) {
	fmt.Fprintln(w, result.Reply)

	if len(result.Locations) > 0 {
		fmt.Fprintln(w)
	}
	for _, loc := range result.Locations {
		if verbose {
			fmt.Fprintf(w, "- %s (%.4f, %.4f) %s\n", loc.Name, loc.Lat, loc.Lng, loc.Description)
		} else {
			fmt.Fprintf(w, "- %s\n", loc.Name)
		}
	}
	for _, b := range result.Bookings {
		if verbose {
			fmt.Fprintf(w, "- [%s] %s, %s: ₹%d\n", b.Type, b.Name, b.Location, b.Price)
		} else {
			fmt.Fprintf(w, "- [%s] %s\n", b.Type, b.Name)
		}
	}
	for _, a := range result.Attractions {
		if verbose {
			fmt.Fprintf(w, "- %s (%.1f): %s\n", a.Name, a.Rating, a.Description)
		} else {
			fmt.Fprintf(w, "- %s\n", a.Name)
		}
	}
}
