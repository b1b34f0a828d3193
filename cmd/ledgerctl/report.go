package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/pledger/cmd/ledgerctl/internal/view"
	"github.com/MrJamesThe3rd/pledger/internal/analytics"
	analyticsStore "github.com/MrJamesThe3rd/pledger/internal/analytics/store"
	"github.com/MrJamesThe3rd/pledger/internal/clock"
)

type reportOptions struct {
	days         int
	from, to     string
	initiativeID string
}

// rangeQuery maps the flags onto the same query the HTTP endpoint accepts.
// --days only counts when it was given explicitly.
func (o reportOptions) rangeQuery(daysSet bool) analytics.RangeQuery {
	q := analytics.RangeQuery{FromDate: o.from, ToDate: o.to, InitiativeID: o.initiativeID}
	if daysSet {
		q.TimeRange = strconv.Itoa(o.days)
	}

	return q
}

func reportCmd() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the pledge analytics report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			clk := clock.NewSystem()

			filter, err := analytics.ParseRange(opts.rangeQuery(cmd.Flags().Changed("days")), clk.Now(), cfg.Analytics.DefaultRangeDays)
			if err != nil {
				return err
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := analytics.NewService(analyticsStore.New(db),
				analytics.WithClock(clk),
				analytics.WithMinimumAmount(cfg.MinimumPledge()),
				analytics.WithTrendWindow(cfg.Analytics.TrendWindowDays),
				analytics.WithLeaderboardSize(cfg.Analytics.LeaderboardSize),
			)

			report, err := svc.Report(cmd.Context(), filter)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), view.Report(report))

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.days, "days", "n", 0, "Report on the last N days, today included")
	cmd.Flags().StringVar(&opts.from, "from", "", "First day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Last day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.initiativeID, "initiative", "", "Restrict the report to one initiative")

	return cmd
}
