package tracker

import (
	"context"
	"net/http"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=tracker_test

type workoutsService interface {
	Workouts(ctx context.Context) ([]model.Workout, error)
	Workout(ctx context.Context, id string) (model.Workout, error)
	CreateWorkout(ctx context.Context, in model.WorkoutInput) (model.Workout, error)
	UpdateWorkout(ctx context.Context, id string, in model.WorkoutInput) (model.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	Catalogue() Catalogue
}

type WorkoutsListResponse struct {
	Workouts []model.Workout `json:"workouts"`
	Total    int             `json:"total"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type WorkoutsHandler struct {
	service workoutsService
}

func NewWorkoutsHandler(service workoutsService) *WorkoutsHandler {
	return &WorkoutsHandler{
		service: service,
	}
}

func (handler *WorkoutsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := handler.service.Workouts(ctx)
	if err != nil {
		writeError(w, "list workouts", err)
		return
	}

	writeJSON(w, "list workouts", WorkoutsListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	}, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Workout(ctx, id)
	if err != nil {
		writeError(w, "get workout", err)
		return
	}
	writeJSON(w, "get workout", workout, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleCatalogue(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.catalogue")
	defer span.End()

	writeJSON(w, "workouts catalogue", handler.service.Catalogue(), http.StatusOK)
}

func (handler *WorkoutsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var in model.WorkoutInput
	if !decodeJSON(w, r, "create workout", &in) {
		return
	}

	workout, err := handler.service.CreateWorkout(ctx, in)
	if err != nil {
		writeError(w, "create workout", err)
		return
	}

	log.Debugf("new workout added: %s [%s]", workout.ID, workout.Name)
	writeJSON(w, "create workout", workout, http.StatusCreated)
}

func (handler *WorkoutsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var in model.WorkoutInput
	if !decodeJSON(w, r, "update workout", &in) {
		return
	}

	workout, err := handler.service.UpdateWorkout(ctx, id, in)
	if err != nil {
		writeError(w, "update workout", err)
		return
	}
	writeJSON(w, "update workout", workout, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteWorkout(ctx, id); err != nil {
		writeError(w, "delete workout", err)
		return
	}

	log.Debugf("workout deleted: %s", id)
	writeJSON(w, "delete workout", DeleteResponse{DeletedID: id}, http.StatusOK)
}
