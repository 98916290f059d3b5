package model

import "time"

type HistoryKind string

const (
	KindWorkout HistoryKind = "workout"
	KindMeal    HistoryKind = "meal"
)

func (k HistoryKind) Valid() bool {
	return k == KindWorkout || k == KindMeal
}

// HistoryRecord is written once when a workout or a meal is marked as done.
// ItemName is the name the item had at that moment.
type HistoryRecord struct {
	ID          string      `json:"id"`
	Kind        HistoryKind `json:"kind"`
	ReferenceID string      `json:"referenceId"`
	ItemName    string      `json:"itemName"`
	CompletedAt time.Time   `json:"completedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type MarkDoneInput struct {
	Kind        HistoryKind `json:"kind" validate:"required,oneof=workout meal"`
	ReferenceID string      `json:"referenceId" validate:"required"`
	ItemName    string      `json:"itemName" validate:"required"`
}

type DashboardSummary struct {
	TotalWorkouts            int             `json:"totalWorkouts"`
	RecentWorkoutCompletions []HistoryRecord `json:"recentWorkoutCompletions"`
	RecentMealCompletions    []HistoryRecord `json:"recentMealCompletions"`
}
