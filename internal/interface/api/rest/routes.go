package rest

import "net/http"

const (
	// api
	RouteApiV1 = "/api/v1"

	// public
	RouteRegistration = RouteApiV1 + "/registration"
	RouteUserByEmail  = RouteApiV1 + "/users/email/:email"
	RouteUserLogin    = RouteApiV1 + "/users/:user_id/login"
	RouteLogin        = RouteApiV1 + "/login"

	// protected
	RouteAuthVerify = RouteApiV1 + "/auth/verify"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)

// PublicRoutes is the allow-list the access gate consults, keyed by
// method + route template. Every route not listed here requires a valid
// bearer token, unmatched paths included.
func PublicRoutes() map[string]struct{} {
	return map[string]struct{}{
		http.MethodPost + " " + RouteRegistration: {},
		http.MethodGet + " " + RouteUserByEmail:   {},
		http.MethodPatch + " " + RouteUserLogin:   {},
		http.MethodPost + " " + RouteLogin:        {},
		http.MethodGet + " " + RouteHealth:        {},
		http.MethodGet + " " + RouteMetrics:       {},
	}
}
