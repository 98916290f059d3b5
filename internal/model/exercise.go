package model

import "time"

const MaxSetCount = 10

type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SetCount    int       `json:"setCount"`
	Technique   string    `json:"technique"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	MuscleGroup string    `json:"muscleGroup"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ExerciseInput struct {
	Name        string `json:"name" validate:"required"`
	SetCount    int    `json:"setCount" validate:"min=1,max=10"`
	Technique   string `json:"technique"`
	VideoURL    string `json:"videoUrl,omitempty" validate:"omitempty,url"`
	MuscleGroup string `json:"muscleGroup" validate:"required"`
}
