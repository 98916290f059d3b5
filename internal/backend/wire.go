package backend

import (
	"math"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
)

// backend documents keep their own (portuguese) field names

const (
	wireKindWorkout = "treino"
	wireKindMeal    = "refeicao"
)

type workoutDTO struct {
	ID           string   `json:"_id"`
	Name         string   `json:"nome"`
	MuscleGroup  string   `json:"grupoMuscular,omitempty"`
	MuscleGroups []string `json:"gruposMusculares,omitempty"`
	ExerciseIDs  []string `json:"exercicios"`
	CreatedAt    string   `json:"criadoEm"`
}

type workoutInputDTO struct {
	Name         string   `json:"nome"`
	MuscleGroup  string   `json:"grupoMuscular,omitempty"`
	MuscleGroups []string `json:"gruposMusculares"`
	ExerciseIDs  []string `json:"exercicios"`
}

type exerciseDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"nome"`
	SetCount    int    `json:"series"`
	Technique   string `json:"tecnica"`
	VideoURL    string `json:"urlVideo,omitempty"`
	MuscleGroup string `json:"grupoMuscular"`
	CreatedAt   string `json:"criadoEm"`
}

type exerciseInputDTO struct {
	Name        string `json:"nome"`
	SetCount    int    `json:"series"`
	Technique   string `json:"tecnica"`
	VideoURL    string `json:"urlVideo,omitempty"`
	MuscleGroup string `json:"grupoMuscular"`
}

type foodDTO struct {
	Name     string  `json:"nome"`
	Quantity string  `json:"quantidade"`
	Calories float64 `json:"calorias"`
}

type mealDTO struct {
	ID        string    `json:"_id"`
	Name      string    `json:"nome"`
	TimeSlot  string    `json:"horario"`
	Foods     []foodDTO `json:"alimentos"`
	CreatedAt string    `json:"criadoEm"`
}

type mealInputDTO struct {
	Name     string    `json:"nome"`
	TimeSlot string    `json:"horario"`
	Foods    []foodDTO `json:"alimentos"`
}

type historyDTO struct {
	ID          string `json:"_id"`
	Kind        string `json:"tipo"`
	ReferenceID string `json:"referencia"`
	ItemName    string `json:"nomeItem"`
	CompletedAt string `json:"dataFeito"`
	CreatedAt   string `json:"criadoEm"`
}

type markDoneDTO struct {
	Kind        string `json:"tipo"`
	ReferenceID string `json:"referencia"`
	ItemName    string `json:"nomeItem"`
	CompletedAt string `json:"dataFeito"`
}

type loginDTO struct {
	UserID   string `json:"_id"`
	Password string `json:"senha"`
}

type loginResponseDTO struct {
	Name string `json:"nome"`
}

// parseWireTime accepts the ISO-8601 timestamps the backend emits; anything
// else becomes the zero time.
func parseWireTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatWireTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func kindToWire(kind model.HistoryKind) string {
	switch kind {
	case model.KindWorkout:
		return wireKindWorkout
	case model.KindMeal:
		return wireKindMeal
	default:
		return string(kind)
	}
}

func kindFromWire(kind string) model.HistoryKind {
	switch kind {
	case wireKindWorkout:
		return model.KindWorkout
	case wireKindMeal:
		return model.KindMeal
	default:
		return model.HistoryKind(kind)
	}
}

func (d workoutDTO) toModel() model.Workout {
	exerciseIDs := d.ExerciseIDs
	if exerciseIDs == nil {
		exerciseIDs = []string{}
	}
	return model.Workout{
		ID:           d.ID,
		Name:         d.Name,
		MuscleGroups: model.NormalizeMuscleGroups(d.MuscleGroups, d.MuscleGroup),
		ExerciseIDs:  exerciseIDs,
		CreatedAt:    parseWireTime(d.CreatedAt),
	}
}

func workoutInputToWire(in model.WorkoutInput) workoutInputDTO {
	groups := model.NormalizeMuscleGroups(in.MuscleGroups, "")
	dto := workoutInputDTO{
		Name:         in.Name,
		MuscleGroups: groups,
		ExerciseIDs:  in.ExerciseIDs,
	}
	// older backends only read the single group
	if len(groups) > 0 {
		dto.MuscleGroup = groups[0]
	}
	if dto.ExerciseIDs == nil {
		dto.ExerciseIDs = []string{}
	}
	return dto
}

func (d exerciseDTO) toModel() model.Exercise {
	return model.Exercise{
		ID:          d.ID,
		Name:        d.Name,
		SetCount:    d.SetCount,
		Technique:   d.Technique,
		VideoURL:    d.VideoURL,
		MuscleGroup: d.MuscleGroup,
		CreatedAt:   parseWireTime(d.CreatedAt),
	}
}

func exerciseInputToWire(in model.ExerciseInput) exerciseInputDTO {
	return exerciseInputDTO{
		Name:        in.Name,
		SetCount:    in.SetCount,
		Technique:   in.Technique,
		VideoURL:    in.VideoURL,
		MuscleGroup: in.MuscleGroup,
	}
}

func (d mealDTO) toModel() model.Meal {
	foods := make([]model.FoodItem, 0, len(d.Foods))
	for _, f := range d.Foods {
		foods = append(foods, model.FoodItem{
			Name:     f.Name,
			Quantity: f.Quantity,
			Calories: int(math.Round(f.Calories)),
		})
	}
	return model.Meal{
		ID:        d.ID,
		Name:      d.Name,
		TimeSlot:  d.TimeSlot,
		Foods:     foods,
		CreatedAt: parseWireTime(d.CreatedAt),
	}
}

func mealInputToWire(in model.MealInput) mealInputDTO {
	foods := make([]foodDTO, 0, len(in.Foods))
	for _, f := range in.Foods {
		foods = append(foods, foodDTO{Name: f.Name, Quantity: f.Quantity, Calories: float64(f.Calories)})
	}
	return mealInputDTO{
		Name:     in.Name,
		TimeSlot: in.TimeSlot,
		Foods:    foods,
	}
}

func (d historyDTO) toModel() model.HistoryRecord {
	return model.HistoryRecord{
		ID:          d.ID,
		Kind:        kindFromWire(d.Kind),
		ReferenceID: d.ReferenceID,
		ItemName:    d.ItemName,
		CompletedAt: parseWireTime(d.CompletedAt),
		CreatedAt:   parseWireTime(d.CreatedAt),
	}
}
