package main

import (
	"github.com/spf13/cobra"

	"github.com/transitkit/opendata-go/pkg/transport"
)

func newStationboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stationboard",
		Short: "Show the next departures at a station",
		Example: `  transport stationboard --station Bern --limit 10
  transport stationboard --id 8507000 --datetime "2024-03-01 10:00"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := transport.StationboardQuery{
				Limit: optionalInt(cmd, "limit"),
			}
			q.Station, _ = cmd.Flags().GetString("station")
			q.ID, _ = cmd.Flags().GetString("id")
			q.Datetime, _ = cmd.Flags().GetString("datetime")

			modes, err := parseModes(cmd)
			if err != nil {
				return err
			}
			q.Transportations = modes

			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			results, err := r.client.FindStationboard(cmd.Context(), q)
			if err != nil {
				return err
			}
			return r.print(cmd, results)
		},
	}

	cmd.Flags().String("station", "", "station name")
	cmd.Flags().String("id", "", "station id, takes precedence over --station")
	cmd.Flags().Int("limit", 0, "number of departures")
	cmd.Flags().String("datetime", "", "departure date and time, YYYY-MM-DD hh:mm")
	addModeFlag(cmd)

	return cmd
}
