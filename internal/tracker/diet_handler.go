package tracker

import (
	"context"
	"net/http"

	"github.com/miguelofoliveir/pandafit-frontend/internal/aggregate"
	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=diet_mocks_test.go -package=tracker_test

type dietService interface {
	Diet(ctx context.Context) (aggregate.DietView, error)
	CreateMeal(ctx context.Context, in model.MealInput) (model.Meal, error)
}

type DietHandler struct {
	service dietService
}

func NewDietHandler(service dietService) *DietHandler {
	return &DietHandler{
		service: service,
	}
}

// HandleGet answers the meals grouped per time slot with calorie totals.
func (handler *DietHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.get")
	defer span.End()

	view, err := handler.service.Diet(ctx)
	if err != nil {
		writeError(w, "get diet", err)
		return
	}
	writeJSON(w, "get diet", view, http.StatusOK)
}

func (handler *DietHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.create")
	defer span.End()

	var in model.MealInput
	if !decodeJSON(w, r, "create meal", &in) {
		return
	}

	meal, err := handler.service.CreateMeal(ctx, in)
	if err != nil {
		writeError(w, "create meal", err)
		return
	}

	log.Debugf("new meal added: %s [%s %s]", meal.ID, meal.TimeSlot, meal.Name)
	writeJSON(w, "create meal", meal, http.StatusCreated)
}
