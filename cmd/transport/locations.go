package main

import (
	"github.com/spf13/cobra"

	"github.com/transitkit/opendata-go/pkg/transport"
)

func newLocationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Find locations by name or coordinates",
		Example: `  transport locations --query "Bern, Bahnhof" --type station
  transport locations --x 7.4391 --y 46.9488 --mode bus,tramway_underground`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := transport.LocationQuery{}
			q.Query, _ = cmd.Flags().GetString("query")

			if raw, _ := cmd.Flags().GetString("type"); raw != "" {
				locationType, err := transport.ParseLocationType(raw)
				if err != nil {
					return transport.NewParameterError("type", err.Error())
				}
				q.Type = locationType
			}

			if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
				x, _ := cmd.Flags().GetFloat64("x")
				y, _ := cmd.Flags().GetFloat64("y")
				q.Coordinates = &transport.Coordinates{X: x, Y: y}
			}

			modes, err := parseModes(cmd)
			if err != nil {
				return err
			}
			q.Transportations = modes

			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			results, err := r.client.FindLocations(cmd.Context(), q)
			if err != nil {
				return err
			}
			return r.print(cmd, results)
		},
	}

	cmd.Flags().String("query", "", "search text, e.g. \"Bern, Bahnhof\"")
	cmd.Flags().String("type", "", "location type: all, station, poi, address")
	cmd.Flags().Float64("x", 0, "x coordinate")
	cmd.Flags().Float64("y", 0, "y coordinate")
	cmd.MarkFlagsRequiredTogether("x", "y")
	addModeFlag(cmd)

	return cmd
}
