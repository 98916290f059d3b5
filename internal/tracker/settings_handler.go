package tracker

import (
	"context"
	"errors"
	"net/http"

	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"
	"github.com/miguelofoliveir/pandafit-frontend/internal/middleware"
	"github.com/miguelofoliveir/pandafit-frontend/internal/session"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/metrics"
	"github.com/miguelofoliveir/pandafit-frontend/internal/telemetry/tracing"
	"github.com/miguelofoliveir/pandafit-frontend/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=settings_mocks_test.go -package=tracker_test

type sessionsService interface {
	Login(ctx context.Context, userID, password string) (session.Record, error)
	Logout(ctx context.Context, token string) (bool, error)
	Lookup(ctx context.Context, token string) (*session.Record, error)
}

type loginCache interface {
	Forget(token string)
}

type resetService interface {
	ResetAll(ctx context.Context) error
}

type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

// SettingsHandler covers the login session and the settings page.
type SettingsHandler struct {
	sessions       sessionsService
	loginCache     loginCache
	reset          resetService
	metricsManager *metrics.Manager
}

func NewSettingsHandler(
	sessions sessionsService,
	loginCache loginCache,
	reset resetService,
	metricsManager *metrics.Manager,
) *SettingsHandler {
	return &SettingsHandler{
		sessions:       sessions,
		loginCache:     loginCache,
		reset:          reset,
		metricsManager: metricsManager,
	}
}

func (handler *SettingsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.login")
	defer span.End()

	var req LoginRequest
	if !decodeJSON(w, r, "login", &req) {
		return
	}

	record, err := handler.sessions.Login(ctx, req.UserID, req.Password)
	if err != nil {
		// any 4xx from the backend is a rejected login, whatever the code
		if backend.IsClientError(err) {
			log.Debugf("login rejected for %s: %s", req.UserID, err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		writeError(w, "login", err)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.Inc()
	}
	log.Infof("user logged in: %s", record.User.ID)
	writeJSON(w, "login", LoginResponse{
		Token: record.Token,
		User:  record.User,
	}, http.StatusOK)
}

func (handler *SettingsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logout")
	defer span.End()

	token := middleware.BearerToken(r)
	handler.loginCache.Forget(token)

	loggedOut, err := handler.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, "logout", LogoutResponse{LoggedOut: loggedOut}, http.StatusOK)
}

// HandleSession answers the current user.
func (handler *SettingsHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session")
	defer span.End()

	record, err := handler.sessions.Lookup(ctx, middleware.BearerToken(r))
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		log.Errorf("get session: %s", err)
		http.Error(w, "get session failed", http.StatusUnauthorized)
		return
	}
	writeJSON(w, "session", record.User, http.StatusOK)
}

func (handler *SettingsHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reset")
	defer span.End()

	if err := handler.reset.ResetAll(ctx); err != nil {
		writeError(w, "reset", err)
		return
	}

	log.Warnln("all data reset")
	pkg.WriteJSONResponseOK(w, `{"reset":true}`)
}
