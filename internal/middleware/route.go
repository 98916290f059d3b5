package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// routeName is the name the router gave the matched route, so metrics and
// logs stay low-cardinality whatever ids the path carries.
func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil || route.GetName() == "" {
		return unmatchedRoute
	}
	return route.GetName()
}
