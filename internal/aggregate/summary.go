package aggregate

import "github.com/miguelofoliveir/pandafit-frontend/internal/model"

// RecentLimit is how many completions of each kind the dashboard shows.
const RecentLimit = 3

// BuildDashboardSummary does not sort, history is expected most recent first.
func BuildDashboardSummary(workouts []model.Workout, history []model.HistoryRecord) model.DashboardSummary {
	summary := model.DashboardSummary{
		TotalWorkouts:            len(workouts),
		RecentWorkoutCompletions: make([]model.HistoryRecord, 0, RecentLimit),
		RecentMealCompletions:    make([]model.HistoryRecord, 0, RecentLimit),
	}

	for _, r := range history {
		switch r.Kind {
		case model.KindWorkout:
			if len(summary.RecentWorkoutCompletions) < RecentLimit {
				summary.RecentWorkoutCompletions = append(summary.RecentWorkoutCompletions, r)
			}
		case model.KindMeal:
			if len(summary.RecentMealCompletions) < RecentLimit {
				summary.RecentMealCompletions = append(summary.RecentMealCompletions, r)
			}
		}
		if len(summary.RecentWorkoutCompletions) == RecentLimit &&
			len(summary.RecentMealCompletions) == RecentLimit {
			break
		}
	}

	return summary
}
