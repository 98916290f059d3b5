package tracker

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"
	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
	"github.com/miguelofoliveir/pandafit-frontend/internal/session"
	"github.com/miguelofoliveir/pandafit-frontend/pkg"

	log "github.com/sirupsen/logrus"
)

// statusFor maps a service error to the status answered to the client.
func statusFor(err error) int {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, ErrInvalidFilter),
		errors.Is(err, session.ErrMissingCredentials):
		return http.StatusBadRequest
	case backend.IsNotFound(err):
		return http.StatusNotFound
	case backend.IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

// writeError logs err and answers with the mapped status. what names the
// failed operation, e.g. "list workouts".
func writeError(w http.ResponseWriter, what string, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusBadGateway:
		log.Errorf("%s: %s", what, err)
		http.Error(w, what+" failed", status)
	case http.StatusBadRequest:
		log.Tracef("%s, bad request: %s", what, err)
		http.Error(w, err.Error(), status)
	default:
		log.Debugf("%s: %s", what, err)
		http.Error(w, http.StatusText(status), status)
	}
}

func writeJSON(w http.ResponseWriter, what string, v any, status int) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("%s, marshal response: %s", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, status)
}

// decodeJSON reads the request body into v, answering 400 when it is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, what string, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("%s, unmarshal json params: %s", what, err)
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}
