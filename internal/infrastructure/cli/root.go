package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/halmos/timely/internal/app"
	"github.com/halmos/timely/internal/application/clock"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The root action itself prints the
// current time; everything else is a subcommand.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var statistics bool

	root := &cobra.Command{
		Use:   "timely",
		Short: "timely - local time, with a side of history",
		Long:  "timely prints the current local time and day/year progress, and looks up Wikipedia \"On This Day\" facts for a given date.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if statistics {
				RenderTimeStatistics(cmd.OutOrStdout(), clock.Compute(now))
				return nil
			}
			RenderCurrentTime(cmd.OutOrStdout(), now)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVarP(&statistics, "statistics", "s", false, "Also show progress through the day / year")

	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
