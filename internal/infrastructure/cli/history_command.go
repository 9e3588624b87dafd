package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/halmos/timely/internal/app"
	"github.com/halmos/timely/internal/domain"
)

// newHistoryCommand creates the 'history' subcommand.
func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		languageFlag string
		categoryFlag string
		month        int
		day          int
		quiet        bool
	)

	// Resolved in PreRunE so invalid input fails before any pipeline work.
	var (
		language string
		category domain.Category
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Fetch \"On This Day\" facts from Wikipedia",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if languageFlag == "" {
				languageFlag = container.Config.DefaultLanguage
			}
			if categoryFlag == "" {
				categoryFlag = container.Config.DefaultCategory
			}

			var err error
			if language, err = domain.ParseLanguageCode(languageFlag); err != nil {
				return err
			}
			category, err = domain.ParseCategory(categoryFlag)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := domain.HistoryQuery{
				Language: language,
				Category: category,
				Month:    month,
				Day:      day,
				Now:      time.Now(),
			}

			// Resolve up front: an invalid date must abort before the
			// spinner starts and before any network access.
			rm, rd, err := query.ResolveDate()
			if err != nil {
				return err
			}

			var spin *Spinner
			if !quiet && !container.Config.Quiet && isatty.IsTerminal(os.Stderr.Fd()) {
				spin = NewSpinner(os.Stderr)
				spin.Start(fmt.Sprintf("Fetching %s for %02d-%02d in '%s'...", category, rm, rd, language))
			}

			res, err := container.HistoryService.Lookup(cmd.Context(), query)
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}

			RenderHistory(cmd.OutOrStdout(), terminalWidth(container.Config.MinWidth), category, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Wikipedia language code (two ASCII letters)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category: events, births, deaths or holidays")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month override (1-12, default: current month)")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day override (1-31, default: current day)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the spinner (useful for scripts)")

	return cmd
}
