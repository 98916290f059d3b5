package tracker

import (
	"context"
	"net/http"

	"github.com/miguelofoliveir/pandafit-frontend/internal/aggregate"
	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=history_mocks_test.go -package=tracker_test

type historyService interface {
	ParseHistoryFilter(kind, date string) (aggregate.HistoryFilter, error)
	HistoryView(ctx context.Context, filter aggregate.HistoryFilter) (aggregate.HistoryView, error)
	MarkDone(ctx context.Context, in model.MarkDoneInput) (model.HistoryRecord, error)
	Dashboard(ctx context.Context) (model.DashboardSummary, error)
}

type HistoryHandler struct {
	service historyService
}

func NewHistoryHandler(service historyService) *HistoryHandler {
	return &HistoryHandler{
		service: service,
	}
}

// HandleList answers the completion history grouped per day, optionally
// filtered with ?kind=workout|meal and ?date=YYYY-MM-DD.
func (handler *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	filter, err := handler.service.ParseHistoryFilter(
		r.URL.Query().Get("kind"),
		r.URL.Query().Get("date"),
	)
	if err != nil {
		writeError(w, "list history", err)
		return
	}

	view, err := handler.service.HistoryView(ctx, filter)
	if err != nil {
		writeError(w, "list history", err)
		return
	}
	writeJSON(w, "list history", view, http.StatusOK)
}

func (handler *HistoryHandler) HandleMarkDone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.mark-done")
	defer span.End()

	var in model.MarkDoneInput
	if !decodeJSON(w, r, "mark done", &in) {
		return
	}

	record, err := handler.service.MarkDone(ctx, in)
	if err != nil {
		writeError(w, "mark done", err)
		return
	}

	log.Debugf("marked done: %s %s [%s]", record.Kind, record.ReferenceID, record.ItemName)
	writeJSON(w, "mark done", record, http.StatusCreated)
}

func (handler *HistoryHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	summary, err := handler.service.Dashboard(ctx)
	if err != nil {
		writeError(w, "dashboard", err)
		return
	}
	writeJSON(w, "dashboard", summary, http.StatusOK)
}
