package main

import (
	"github.com/spf13/cobra"

	"github.com/transitkit/opendata-go/pkg/transport"
)

func newConnectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Short:   "Find connections between two locations",
		Example: `  transport connections --from Bern --to Zürich --via Olten --limit 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			q := transport.ConnectionQuery{
				IsArrivalTime: optionalBool(cmd, "arrival"),
				Limit:         optionalInt(cmd, "limit"),
				Page:          optionalInt(cmd, "page"),
				Direct:        optionalBool(cmd, "direct"),
				Sleeper:       optionalBool(cmd, "sleeper"),
				Couchette:     optionalBool(cmd, "couchette"),
				Bike:          optionalBool(cmd, "bike"),
			}
			q.From, _ = flags.GetString("from")
			q.To, _ = flags.GetString("to")
			q.Via, _ = flags.GetStringArray("via")
			q.Date, _ = flags.GetString("date")
			q.Time, _ = flags.GetString("time")

			if raw, _ := flags.GetString("accessibility"); raw != "" {
				level, err := transport.ParseAccessibilityLevel(raw)
				if err != nil {
					return transport.NewParameterError("accessibility", err.Error())
				}
				q.Accessibility = level
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
			results, err := r.client.FindConnections(cmd.Context(), q)
			if err != nil {
				return err
			}
			return r.print(cmd, results)
		},
	}

	cmd.Flags().String("from", "", "departure location")
	cmd.Flags().String("to", "", "arrival location")
	cmd.Flags().StringArray("via", nil, "via location, repeat up to five times")
	cmd.Flags().String("date", "", "date, YYYY-MM-DD")
	cmd.Flags().String("time", "", "time, hh:mm")
	cmd.Flags().Bool("arrival", false, "date and time are the arrival time")
	cmd.Flags().Int("limit", 0, "number of connections, 1-6")
	cmd.Flags().Int("page", 0, "result page, 0-10")
	cmd.Flags().Bool("direct", false, "direct connections only")
	cmd.Flags().Bool("sleeper", false, "night trains with beds only")
	cmd.Flags().Bool("couchette", false, "night trains with couchettes only")
	cmd.Flags().Bool("bike", false, "trains carrying bicycles only")
	cmd.Flags().String("accessibility", "", "independent_boarding, assisted_boarding or advanced_notice")
	addModeFlag(cmd)
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
