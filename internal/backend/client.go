package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/metrics"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultBaseURL = "http://localhost:8000/api"

// Client talks to the PandaFit REST backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	metricsManager *metrics.Manager
	now            func() time.Time
}

type Option func(*Client)

func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

func WithMetrics(metricsManager *metrics.Manager) Option {
	return func(c *Client) {
		c.metricsManager = metricsManager
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) token(ctx context.Context) string {
	if token, ok := TokenFromContext(ctx); ok {
		return token
	}
	if c.tokens != nil {
		return c.tokens.Token()
	}
	return ""
}

// do sends the request and decodes a JSON answer into out, when out is not nil.
// endpoint is the low cardinality name used in metrics and spans.
func (c *Client) do(ctx context.Context, method, endpoint, path string, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backend."+endpoint)
	span.SetAttributes(attribute.String("http.method", method))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("new %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	begin := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(endpoint, resp, begin)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debugf("backend %s %s => %d", method, path, resp.StatusCode)
		return &StatusError{
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) observe(endpoint string, resp *http.Response, begin time.Time) {
	if c.metricsManager == nil {
		return
	}
	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.metricsManager.CounterBackendRequests.WithLabelValues(endpoint, status).Inc()
	c.metricsManager.HistBackendDuration.WithLabelValues(endpoint).Observe(time.Since(begin).Seconds())
}

func escapeID(id string) string {
	return url.PathEscape(id)
}

// Login asks the backend to accept the credentials and returns the display name.
func (c *Client) Login(ctx context.Context, userID, password string) (string, error) {
	var resp loginResponseDTO
	if err := c.do(ctx, http.MethodPost, "login", "/usuarios/login", loginDTO{
		UserID:   userID,
		Password: password,
	}, &resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

// workouts

func (c *Client) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	var dtos []workoutDTO
	if err := c.do(ctx, http.MethodGet, "workouts.list", "/treinos", nil, &dtos); err != nil {
		return nil, err
	}
	workouts := make([]model.Workout, 0, len(dtos))
	for _, d := range dtos {
		workouts = append(workouts, d.toModel())
	}
	return workouts, nil
}

func (c *Client) GetWorkout(ctx context.Context, id string) (model.Workout, error) {
	var dto workoutDTO
	if err := c.do(ctx, http.MethodGet, "workouts.get", "/treinos/"+escapeID(id), nil, &dto); err != nil {
		return model.Workout{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) CreateWorkout(ctx context.Context, in model.WorkoutInput) (model.Workout, error) {
	var dto workoutDTO
	if err := c.do(ctx, http.MethodPost, "workouts.create", "/treinos", workoutInputToWire(in), &dto); err != nil {
		return model.Workout{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) UpdateWorkout(ctx context.Context, id string, in model.WorkoutInput) (model.Workout, error) {
	var dto workoutDTO
	if err := c.do(ctx, http.MethodPut, "workouts.update", "/treinos/"+escapeID(id), workoutInputToWire(in), &dto); err != nil {
		return model.Workout{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "workouts.delete", "/treinos/"+escapeID(id), nil, nil)
}

// exercises

func (c *Client) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	var dtos []exerciseDTO
	if err := c.do(ctx, http.MethodGet, "exercises.list", "/exercicios", nil, &dtos); err != nil {
		return nil, err
	}
	exercises := make([]model.Exercise, 0, len(dtos))
	for _, d := range dtos {
		exercises = append(exercises, d.toModel())
	}
	return exercises, nil
}

func (c *Client) GetExercise(ctx context.Context, id string) (model.Exercise, error) {
	var dto exerciseDTO
	if err := c.do(ctx, http.MethodGet, "exercises.get", "/exercicios/"+escapeID(id), nil, &dto); err != nil {
		return model.Exercise{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) CreateExercise(ctx context.Context, in model.ExerciseInput) (model.Exercise, error) {
	var dto exerciseDTO
	if err := c.do(ctx, http.MethodPost, "exercises.create", "/exercicios", exerciseInputToWire(in), &dto); err != nil {
		return model.Exercise{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) UpdateExercise(ctx context.Context, id string, in model.ExerciseInput) (model.Exercise, error) {
	var dto exerciseDTO
	if err := c.do(ctx, http.MethodPut, "exercises.update", "/exercicios/"+escapeID(id), exerciseInputToWire(in), &dto); err != nil {
		return model.Exercise{}, err
	}
	return dto.toModel(), nil
}

func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "exercises.delete", "/exercicios/"+escapeID(id), nil, nil)
}

// diet

func (c *Client) ListMeals(ctx context.Context) ([]model.Meal, error) {
	var dtos []mealDTO
	if err := c.do(ctx, http.MethodGet, "diet.list", "/dieta", nil, &dtos); err != nil {
		return nil, err
	}
	meals := make([]model.Meal, 0, len(dtos))
	for _, d := range dtos {
		meals = append(meals, d.toModel())
	}
	return meals, nil
}

func (c *Client) CreateMeal(ctx context.Context, in model.MealInput) (model.Meal, error) {
	var dto mealDTO
	if err := c.do(ctx, http.MethodPost, "diet.create", "/dieta", mealInputToWire(in), &dto); err != nil {
		return model.Meal{}, err
	}
	return dto.toModel(), nil
}

// history

// HistoryQuery narrows the history on the backend side. Zero fields are not sent.
type HistoryQuery struct {
	Kind model.HistoryKind
	// Date is a calendar day, YYYY-MM-DD
	Date string
}

func (q HistoryQuery) Encode() string {
	params := url.Values{}
	if q.Kind != "" {
		params.Set("tipo", kindToWire(q.Kind))
	}
	if q.Date != "" {
		params.Set("data", q.Date)
	}
	return params.Encode()
}

func (c *Client) ListHistory(ctx context.Context, query HistoryQuery) ([]model.HistoryRecord, error) {
	path := "/historico"
	if qs := query.Encode(); qs != "" {
		path += "?" + qs
	}

	var dtos []historyDTO
	if err := c.do(ctx, http.MethodGet, "history.list", path, nil, &dtos); err != nil {
		return nil, err
	}
	records := make([]model.HistoryRecord, 0, len(dtos))
	for _, d := range dtos {
		records = append(records, d.toModel())
	}
	return records, nil
}

// MarkDone records a completion stamped with the current time.
func (c *Client) MarkDone(ctx context.Context, in model.MarkDoneInput) (model.HistoryRecord, error) {
	var dto historyDTO
	if err := c.do(ctx, http.MethodPost, "history.create", "/historico", markDoneDTO{
		Kind:        kindToWire(in.Kind),
		ReferenceID: in.ReferenceID,
		ItemName:    in.ItemName,
		CompletedAt: formatWireTime(c.now()),
	}, &dto); err != nil {
		return model.HistoryRecord{}, err
	}
	return dto.toModel(), nil
}

// ResetAll wipes all data kept by the backend.
func (c *Client) ResetAll(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "reset", "/reset", nil, nil)
}
