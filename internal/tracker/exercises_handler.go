package tracker

import (
	"context"
	"net/http"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=tracker_test

type exercisesService interface {
	Exercises(ctx context.Context) ([]model.Exercise, error)
	Exercise(ctx context.Context, id string) (model.Exercise, error)
	CreateExercise(ctx context.Context, in model.ExerciseInput) (model.Exercise, error)
	UpdateExercise(ctx context.Context, id string, in model.ExerciseInput) (model.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
}

type ExercisesListResponse struct {
	Exercises []model.Exercise `json:"exercises"`
	Total     int              `json:"total"`
}

type ExercisesHandler struct {
	service exercisesService
}

func NewExercisesHandler(service exercisesService) *ExercisesHandler {
	return &ExercisesHandler{
		service: service,
	}
}

func (handler *ExercisesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.service.Exercises(ctx)
	if err != nil {
		writeError(w, "list exercises", err)
		return
	}

	writeJSON(w, "list exercises", ExercisesListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	}, http.StatusOK)
}

func (handler *ExercisesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	exercise, err := handler.service.Exercise(ctx, id)
	if err != nil {
		writeError(w, "get exercise", err)
		return
	}
	writeJSON(w, "get exercise", exercise, http.StatusOK)
}

func (handler *ExercisesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.create")
	defer span.End()

	var in model.ExerciseInput
	if !decodeJSON(w, r, "create exercise", &in) {
		return
	}

	exercise, err := handler.service.CreateExercise(ctx, in)
	if err != nil {
		writeError(w, "create exercise", err)
		return
	}

	log.Debugf("new exercise added: %s [%s]", exercise.ID, exercise.Name)
	writeJSON(w, "create exercise", exercise, http.StatusCreated)
}

func (handler *ExercisesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var in model.ExerciseInput
	if !decodeJSON(w, r, "update exercise", &in) {
		return
	}

	exercise, err := handler.service.UpdateExercise(ctx, id, in)
	if err != nil {
		writeError(w, "update exercise", err)
		return
	}
	writeJSON(w, "update exercise", exercise, http.StatusOK)
}

func (handler *ExercisesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteExercise(ctx, id); err != nil {
		writeError(w, "delete exercise", err)
		return
	}

	log.Debugf("exercise deleted: %s", id)
	writeJSON(w, "delete exercise", DeleteResponse{DeletedID: id}, http.StatusOK)
}
