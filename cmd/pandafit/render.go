package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/aggregate"
	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
)

const noData = "no data"

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderDashboard(out io.Writer, summary model.DashboardSummary, loc *time.Location) error {
	fmt.Fprintf(out, "Workouts: %d\n", summary.TotalWorkouts)

	for _, section := range []struct {
		title   string
		records []model.HistoryRecord
	}{
		{title: "Recent workouts", records: summary.RecentWorkoutCompletions},
		{title: "Recent meals", records: summary.RecentMealCompletions},
	} {
		fmt.Fprintf(out, "\n%s:\n", section.title)
		if len(section.records) == 0 {
			fmt.Fprintf(out, "  %s\n", noData)
			continue
		}
		tw := newTabWriter(out)
		for _, r := range section.records {
			fmt.Fprintf(tw, "  %s\t%s\n", r.CompletedAt.In(loc).Format("2006-01-02 15:04"), r.ItemName)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func renderWorkouts(out io.Writer, workouts []model.Workout) error {
	if len(workouts) == 0 {
		_, err := fmt.Fprintln(out, noData)
		return err
	}
	tw := newTabWriter(out)
	fmt.Fprintln(tw, "ID\tNAME\tMUSCLE GROUPS\tEXERCISES")
	for _, w := range workouts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", w.ID, w.Name, strings.Join(w.MuscleGroups, ", "), len(w.ExerciseIDs))
	}
	return tw.Flush()
}

func renderExercises(out io.Writer, exercises []model.Exercise) error {
	if len(exercises) == 0 {
		_, err := fmt.Fprintln(out, noData)
		return err
	}
	tw := newTabWriter(out)
	fmt.Fprintln(tw, "ID\tNAME\tSETS\tTECHNIQUE\tMUSCLE GROUP")
	for _, e := range exercises {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", e.ID, e.Name, e.SetCount, e.Technique, e.MuscleGroup)
	}
	return tw.Flush()
}

func renderDiet(out io.Writer, view aggregate.DietView) error {
	if len(view.Slots) == 0 {
		_, err := fmt.Fprintln(out, noData)
		return err
	}
	tw := newTabWriter(out)
	for _, slot := range view.Slots {
		fmt.Fprintf(tw, "%s\t\t%d kcal\n", slot.TimeSlot, slot.Calories)
		for _, meal := range slot.Meals {
			fmt.Fprintf(tw, "\t%s\t%d kcal\n", meal.Name, aggregate.TotalCalories(meal.Foods))
		}
	}
	fmt.Fprintf(tw, "Total\t\t%d kcal\n", view.TotalCalories)
	return tw.Flush()
}

func renderHistory(out io.Writer, view aggregate.HistoryView, loc *time.Location) error {
	if len(view.Days) == 0 {
		_, err := fmt.Fprintln(out, noData)
		return err
	}
	tw := newTabWriter(out)
	for _, day := range view.Days {
		fmt.Fprintf(tw, "%s\n", day.Date)
		for _, r := range day.Records {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.CompletedAt.In(loc).Format("15:04"), r.Kind, r.ItemName)
		}
	}
	fmt.Fprintf(tw, "\nworkouts: %d, meals: %d\n", view.WorkoutCount, view.MealCount)
	return tw.Flush()
}
