package model

import "time"

type FoodItem struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Calories int    `json:"calories" validate:"gt=0"`
}

// Meal is a named collection of foods eaten at a time slot.
// TimeSlot is a zero-padded 24h "HH:MM" string, so string order is clock order.
type Meal struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	TimeSlot  string     `json:"timeSlot"`
	Foods     []FoodItem `json:"foods"`
	CreatedAt time.Time  `json:"createdAt"`
}

type MealInput struct {
	Name     string     `json:"name" validate:"required"`
	TimeSlot string     `json:"timeSlot" validate:"required,timeslot"`
	Foods    []FoodItem `json:"foods" validate:"min=1,dive"`
}
