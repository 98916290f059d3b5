package model

import (
	"strings"
	"time"
)

type Workout struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscleGroups"`
	ExerciseIDs  []string  `json:"exerciseIds"`
	CreatedAt    time.Time `json:"createdAt"`
}

type WorkoutInput struct {
	Name         string   `json:"name" validate:"required"`
	MuscleGroups []string `json:"muscleGroups" validate:"min=1,dive,required"`
	ExerciseIDs  []string `json:"exerciseIds"`
}

// NormalizeMuscleGroups merges the multi-group list and the legacy
// single-group field into one list. Blank and repeated entries are dropped,
// first occurrence wins. The legacy group is used only when the list is empty.
func NormalizeMuscleGroups(groups []string, legacy string) []string {
	normalized := make([]string, 0, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		normalized = append(normalized, g)
	}

	if len(normalized) == 0 {
		if legacy = strings.TrimSpace(legacy); legacy != "" {
			normalized = append(normalized, legacy)
		}
	}

	return normalized
}

type WorkoutPreset struct {
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscleGroups"`
}

// MuscleGroups lists the groups a workout can target.
var MuscleGroups = []string{
	"Dorsais",
	"Posterior de Ombros",
	"Trapézio",
	"Lombar",
	"Peitorais",
	"Deltoide Anterior",
	"Deltoide Lateral",
	"Quadríceps",
	"Posteriores de Coxa",
	"Glúteos",
	"Panturrilhas",
	"Bíceps",
	"Antebraços",
	"Tríceps",
	"Abdominais",
	"Oblíquos",
}

var WorkoutPresets = []WorkoutPreset{
	{
		Name:         "Treino A - Costas/Ombros",
		MuscleGroups: []string{"Dorsais", "Posterior de Ombros", "Trapézio", "Lombar"},
	},
	{
		Name:         "Treino B - Peito/Ombros",
		MuscleGroups: []string{"Peitorais", "Deltoide Anterior", "Deltoide Lateral"},
	},
	{
		Name:         "Treino C - Pernas",
		MuscleGroups: []string{"Quadríceps", "Posteriores de Coxa", "Glúteos", "Panturrilhas"},
	},
	{
		Name:         "Treino D - Braços/Abdômen",
		MuscleGroups: []string{"Bíceps", "Antebraços", "Tríceps", "Abdominais"},
	},
}
