package querycache

import (
	"strings"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
)

// Key is a slash separated path; invalidating a key also drops every key below it.
type Key string

const (
	WorkoutsKey  Key = "treinos"
	ExercisesKey Key = "exercicios"
	DietKey      Key = "dieta"
	HistoryKey   Key = "historico"
)

func WorkoutKey(id string) Key {
	return Key("treino/" + id)
}

func ExerciseKey(id string) Key {
	return Key("exercicio/" + id)
}

// HistoryFilterKey identifies one filtered history read; empty parts are kept
// so the key stays below HistoryKey.
func HistoryFilterKey(kind model.HistoryKind, date string) Key {
	return Key(string(HistoryKey) + "/" + string(kind) + "/" + date)
}

// Covers reports whether invalidating k must drop other.
func (k Key) Covers(other Key) bool {
	return other == k || strings.HasPrefix(string(other), string(k)+"/")
}
