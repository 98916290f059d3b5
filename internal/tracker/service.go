package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/aggregate"
	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"
	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/querycache"
	"github.com/miguelofoliveir/pandafit-frontend/internal/retry"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/metrics"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidFilter = errors.New("invalid history filter")

type backendClient interface {
	ListWorkouts(ctx context.Context) ([]model.Workout, error)
	GetWorkout(ctx context.Context, id string) (model.Workout, error)
	CreateWorkout(ctx context.Context, in model.WorkoutInput) (model.Workout, error)
	UpdateWorkout(ctx context.Context, id string, in model.WorkoutInput) (model.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	ListExercises(ctx context.Context) ([]model.Exercise, error)
	GetExercise(ctx context.Context, id string) (model.Exercise, error)
	CreateExercise(ctx context.Context, in model.ExerciseInput) (model.Exercise, error)
	UpdateExercise(ctx context.Context, id string, in model.ExerciseInput) (model.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
	ListMeals(ctx context.Context) ([]model.Meal, error)
	CreateMeal(ctx context.Context, in model.MealInput) (model.Meal, error)
	ListHistory(ctx context.Context, query backend.HistoryQuery) ([]model.HistoryRecord, error)
	MarkDone(ctx context.Context, in model.MarkDoneInput) (model.HistoryRecord, error)
	ResetAll(ctx context.Context) error
}

// Catalogue is what the workout form offers to pick from.
type Catalogue struct {
	MuscleGroups []string              `json:"muscleGroups"`
	Presets      []model.WorkoutPreset `json:"presets"`
}

// Service serves the tracker views over the backend: reads go through the
// query cache and the retry policy, writes invalidate what they touch.
type Service struct {
	client         backendClient
	cache          *querycache.Cache
	policy         retry.Policy
	location       *time.Location
	metricsManager *metrics.Manager
}

func NewService(
	client backendClient,
	cache *querycache.Cache,
	policy retry.Policy,
	location *time.Location,
	metricsManager *metrics.Manager,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		client:         client,
		cache:          cache,
		policy:         policy,
		location:       location,
		metricsManager: metricsManager,
	}
}

func (s *Service) Location() *time.Location {
	return s.location
}

// cachedRead serves key from the cache, or loads it with retries. 4xx answers
// are not retried.
func cachedRead[T any](ctx context.Context, s *Service, key querycache.Key, name string, load func(ctx context.Context) (T, error)) (T, error) {
	return querycache.Fetch(ctx, s.cache, key, func(ctx context.Context) (T, error) {
		return retry.Load(ctx, name, s.policy, func(ctx context.Context) (T, error) {
			val, err := load(ctx)
			if err != nil && backend.IsClientError(err) {
				return val, retry.Permanent(err)
			}
			return val, err
		})
	})
}

func (s *Service) Workouts(ctx context.Context) ([]model.Workout, error) {
	return cachedRead(ctx, s, querycache.WorkoutsKey, "workouts", s.client.ListWorkouts)
}

func (s *Service) Workout(ctx context.Context, id string) (model.Workout, error) {
	return cachedRead(ctx, s, querycache.WorkoutKey(id), "workout", func(ctx context.Context) (model.Workout, error) {
		return s.client.GetWorkout(ctx, id)
	})
}

func (s *Service) Exercises(ctx context.Context) ([]model.Exercise, error) {
	return cachedRead(ctx, s, querycache.ExercisesKey, "exercises", s.client.ListExercises)
}

func (s *Service) Exercise(ctx context.Context, id string) (model.Exercise, error) {
	return cachedRead(ctx, s, querycache.ExerciseKey(id), "exercise", func(ctx context.Context) (model.Exercise, error) {
		return s.client.GetExercise(ctx, id)
	})
}

func (s *Service) Meals(ctx context.Context) ([]model.Meal, error) {
	return cachedRead(ctx, s, querycache.DietKey, "diet", s.client.ListMeals)
}

// ParseHistoryFilter builds a filter from raw query values; empty values do
// not constrain.
func (s *Service) ParseHistoryFilter(kind, date string) (aggregate.HistoryFilter, error) {
	filter := aggregate.HistoryFilter{
		Kind:     model.HistoryKind(kind),
		Location: s.location,
	}
	if kind != "" && !filter.Kind.Valid() {
		return aggregate.HistoryFilter{}, fmt.Errorf("%w: unknown kind [%s]", ErrInvalidFilter, kind)
	}
	if date != "" {
		day, err := aggregate.ParseDay(date)
		if err != nil {
			return aggregate.HistoryFilter{}, fmt.Errorf("%w: %s", ErrInvalidFilter, err)
		}
		filter.Date = day
	}
	return filter, nil
}

// History returns the completion records matching filter, most recent first.
// The backend narrows the result when it can, the filter is then applied
// again locally.
func (s *Service) History(ctx context.Context, filter aggregate.HistoryFilter) ([]model.HistoryRecord, error) {
	filter.Location = s.location
	query := backend.HistoryQuery{Kind: filter.Kind}
	// the backend cuts days in UTC
	if s.location == time.UTC {
		query.Date = filter.Date.String()
	}

	key := querycache.HistoryFilterKey(query.Kind, query.Date)
	records, err := cachedRead(ctx, s, key, "history", func(ctx context.Context) ([]model.HistoryRecord, error) {
		return s.client.ListHistory(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return aggregate.FilterHistory(records, filter), nil
}

func (s *Service) Catalogue() Catalogue {
	return Catalogue{
		MuscleGroups: model.MuscleGroups,
		Presets:      model.WorkoutPresets,
	}
}

// views

func (s *Service) Dashboard(ctx context.Context) (_ model.DashboardSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		workouts []model.Workout
		history  []model.HistoryRecord
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workouts, err = s.Workouts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.History(gCtx, aggregate.HistoryFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardSummary{}, err
	}

	return aggregate.BuildDashboardSummary(workouts, history), nil
}

func (s *Service) Diet(ctx context.Context) (aggregate.DietView, error) {
	meals, err := s.Meals(ctx)
	if err != nil {
		return aggregate.DietView{}, err
	}
	return aggregate.BuildDietView(meals), nil
}

func (s *Service) HistoryView(ctx context.Context, filter aggregate.HistoryFilter) (aggregate.HistoryView, error) {
	records, err := s.History(ctx, filter)
	if err != nil {
		return aggregate.HistoryView{}, err
	}
	filter.Location = s.location
	return aggregate.BuildHistoryView(records, filter), nil
}

// writes

func (s *Service) CreateWorkout(ctx context.Context, in model.WorkoutInput) (model.Workout, error) {
	if err := model.Validate(in); err != nil {
		return model.Workout{}, err
	}
	workout, err := s.client.CreateWorkout(ctx, in)
	if err != nil {
		return model.Workout{}, err
	}
	s.cache.Invalidate(querycache.WorkoutsKey)
	return workout, nil
}

func (s *Service) UpdateWorkout(ctx context.Context, id string, in model.WorkoutInput) (model.Workout, error) {
	if err := model.Validate(in); err != nil {
		return model.Workout{}, err
	}
	workout, err := s.client.UpdateWorkout(ctx, id, in)
	if err != nil {
		return model.Workout{}, err
	}
	s.cache.Invalidate(querycache.WorkoutsKey, querycache.WorkoutKey(id))
	return workout, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	if err := s.client.DeleteWorkout(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.WorkoutsKey, querycache.WorkoutKey(id))
	return nil
}

func (s *Service) CreateExercise(ctx context.Context, in model.ExerciseInput) (model.Exercise, error) {
	if err := model.Validate(in); err != nil {
		return model.Exercise{}, err
	}
	exercise, err := s.client.CreateExercise(ctx, in)
	if err != nil {
		return model.Exercise{}, err
	}
	s.cache.Invalidate(querycache.ExercisesKey)
	return exercise, nil
}

func (s *Service) UpdateExercise(ctx context.Context, id string, in model.ExerciseInput) (model.Exercise, error) {
	if err := model.Validate(in); err != nil {
		return model.Exercise{}, err
	}
	exercise, err := s.client.UpdateExercise(ctx, id, in)
	if err != nil {
		return model.Exercise{}, err
	}
	s.cache.Invalidate(querycache.ExercisesKey, querycache.ExerciseKey(id))
	return exercise, nil
}

func (s *Service) DeleteExercise(ctx context.Context, id string) error {
	if err := s.client.DeleteExercise(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.ExercisesKey, querycache.ExerciseKey(id))
	return nil
}

func (s *Service) CreateMeal(ctx context.Context, in model.MealInput) (model.Meal, error) {
	if err := model.Validate(in); err != nil {
		return model.Meal{}, err
	}
	meal, err := s.client.CreateMeal(ctx, in)
	if err != nil {
		return model.Meal{}, err
	}
	s.cache.Invalidate(querycache.DietKey)
	return meal, nil
}

func (s *Service) MarkDone(ctx context.Context, in model.MarkDoneInput) (model.HistoryRecord, error) {
	if err := model.Validate(in); err != nil {
		return model.HistoryRecord{}, err
	}
	record, err := s.client.MarkDone(ctx, in)
	if err != nil {
		return model.HistoryRecord{}, err
	}
	s.cache.Invalidate(querycache.HistoryKey)
	if s.metricsManager != nil {
		s.metricsManager.CounterMarkedDone.WithLabelValues(string(in.Kind)).Inc()
	}
	return record, nil
}

func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.client.ResetAll(ctx); err != nil {
		return err
	}
	s.cache.InvalidateAll()
	return nil
}
