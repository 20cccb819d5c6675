package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alextm0/identity-shift-sub002/internal/cli/formatter"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Yearly reviews: ratings, wins and the year's narrative",
	}

	cmd.AddCommand(
		newReviewSaveCmd(app),
		newReviewShowCmd(app),
		newReviewRateCmd(app),
	)

	return cmd
}

// loadReview returns the stored review for year, or an empty one.
func loadReview(ctx context.Context, app *App, year int) (*domain.YearlyReview, error) {
	r, err := app.Reviews.Get(ctx, year)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.YearlyReview{Year: year, Ratings: domain.DimensionRatings{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newReviewSaveCmd(app *App) *cobra.Command {
	var year int
	var rates map[string]int
	var wins, challenges []string
	var lessons, decision string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a yearly review; unset flags keep stored values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !cmd.Flags().Changed("year") {
				year = app.now().Year()
			}
			r, err := loadReview(ctx, app, year)
			if err != nil {
				return err
			}

			ratings, err := parseRatings(rates)
			if err != nil {
				return err
			}
			if r.Ratings == nil {
				r.Ratings = domain.DimensionRatings{}
			}
			for d, score := range ratings {
				r.Ratings[d] = score
			}

			flags := cmd.Flags()
			if flags.Changed("win") {
				r.Wins = wins
			}
			if flags.Changed("challenge") {
				r.Challenges = challenges
			}
			if flags.Changed("lessons") {
				r.Lessons = lessons
			}
			if flags.Changed("decision") {
				r.KeyDecision = decision
			}

			if err := app.Reviews.Save(ctx, r); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReview(r))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Review year (default this year)")
	cmd.Flags().StringToIntVar(&rates, "rate", nil, "Dimension rating 1-10, e.g. --rate health=7 (repeatable)")
	cmd.Flags().StringArrayVar(&wins, "win", nil, "A win of the year (repeatable)")
	cmd.Flags().StringArrayVar(&challenges, "challenge", nil, "A challenge of the year (repeatable)")
	cmd.Flags().StringVar(&lessons, "lessons", "", "Lessons learned")
	cmd.Flags().StringVar(&decision, "decision", "", "The decision that shaped the year")

	return cmd
}

func newReviewShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [year]",
		Short: "Show a review with its weak and strong dimensions and narrative",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := yearArg(app, args)
			if err != nil {
				return err
			}
			resp, err := app.Reviews.Analyze(context.Background(), year)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no review for %d: record one with `shift review save`", year)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReviewAnalysis(resp))
			return nil
		},
	}
}

func newReviewRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate [year]",
		Short: "Rate every dimension interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("review rate needs a terminal; use `shift review save --rate dim=score`")
			}
			ctx := context.Background()
			year, err := yearArg(app, args)
			if err != nil {
				return err
			}
			r, err := loadReview(ctx, app, year)
			if err != nil {
				return err
			}

			complete := r.Ratings.Complete()
			scores := make([]int, len(domain.AllDimensions))
			for i, d := range domain.AllDimensions {
				scores[i] = complete[d]
			}
			if err := ratingsForm(scores).Run(); err != nil {
				return err
			}
			for i, d := range domain.AllDimensions {
				complete[d] = scores[i]
			}
			r.Ratings = complete

			if err := app.Reviews.Save(ctx, r); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRatings(r.Ratings))
			return nil
		},
	}
}

func yearArg(app *App, args []string) (int, error) {
	if len(args) == 0 {
		return app.now().Year(), nil
	}
	year, err := strconv.Atoi(args[0])
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("invalid year %q", args[0])
	}
	return year, nil
}
