package main

import (
	"fmt"
	"strings"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the workout count and the latest completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			summary, err := a.tracker.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return renderDashboard(a.out, summary, a.tracker.Location())
		},
	}
}

func newWorkoutsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "workouts",
		Short: "List workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			workouts, err := a.tracker.Workouts(cmd.Context())
			if err != nil {
				return err
			}
			return renderWorkouts(a.out, workouts)
		},
	}
}

func newExercisesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			exercises, err := a.tracker.Exercises(cmd.Context())
			if err != nil {
				return err
			}
			return renderExercises(a.out, exercises)
		},
	}
}

func newDietCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diet",
		Short: "Show meals per time slot with calories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			view, err := a.tracker.Diet(cmd.Context())
			if err != nil {
				return err
			}
			return renderDiet(a.out, view)
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var kind, date string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed workouts and meals per day, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			filter, err := a.tracker.ParseHistoryFilter(kind, date)
			if err != nil {
				return err
			}
			view, err := a.tracker.HistoryView(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return renderHistory(a.out, view, a.tracker.Location())
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only this kind [workout | meal]")
	cmd.Flags().StringVar(&date, "date", "", "only this day, YYYY-MM-DD")
	return cmd
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done workout|meal <id> <name>",
		Short: "Mark a workout or a meal as done now",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			record, err := a.tracker.MarkDone(cmd.Context(), model.MarkDoneInput{
				Kind:        model.HistoryKind(args[0]),
				ReferenceID: args[1],
				ItemName:    strings.Join(args[2:], " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Marked %s [%s] as done at %s\n",
				record.Kind,
				record.ItemName,
				record.CompletedAt.In(a.tracker.Location()).Format("2006-01-02 15:04"),
			)
			return nil
		},
	}
}
