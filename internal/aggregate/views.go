package aggregate

import "github.com/miguelofoliveir/pandafit-frontend/internal/model"

type MealSlot struct {
	TimeSlot string       `json:"timeSlot"`
	Meals    []model.Meal `json:"meals"`
	Calories int          `json:"calories"`
}

type DietView struct {
	Slots         []MealSlot `json:"slots"`
	TotalCalories int        `json:"totalCalories"`
}

// BuildDietView groups meals by time slot, earliest slot first.
func BuildDietView(meals []model.Meal) DietView {
	bySlot := GroupBy(meals, func(m model.Meal) string {
		return m.TimeSlot
	})

	view := DietView{
		Slots: make([]MealSlot, 0, bySlot.Len()),
	}
	for _, g := range bySlot.Sorted(Ascending) {
		slotCalories := MealCalories(g.Items)
		view.Slots = append(view.Slots, MealSlot{
			TimeSlot: g.Key,
			Meals:    g.Items,
			Calories: slotCalories,
		})
		view.TotalCalories += slotCalories
	}

	return view
}

type HistoryDay struct {
	Date    string                `json:"date"`
	Records []model.HistoryRecord `json:"records"`
}

type HistoryView struct {
	Days         []HistoryDay `json:"days"`
	WorkoutCount int          `json:"workoutCount"`
	MealCount    int          `json:"mealCount"`
}

// BuildHistoryView filters records and groups them per calendar day,
// most recent day first. Counts are taken over the filtered records.
func BuildHistoryView(records []model.HistoryRecord, filter HistoryFilter) HistoryView {
	filtered := FilterHistory(records, filter)

	byDay := GroupBy(filtered, func(r model.HistoryRecord) string {
		return DayOf(r.CompletedAt, filter.Location).String()
	})

	view := HistoryView{
		Days: make([]HistoryDay, 0, byDay.Len()),
	}
	for _, g := range byDay.Sorted(Descending) {
		view.Days = append(view.Days, HistoryDay{
			Date:    g.Key,
			Records: g.Items,
		})
	}

	for _, r := range filtered {
		switch r.Kind {
		case model.KindWorkout:
			view.WorkoutCount++
		case model.KindMeal:
			view.MealCount++
		}
	}

	return view
}
