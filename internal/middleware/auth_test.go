package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"
	"github.com/miguelofoliveir/pandafit-frontend/internal/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	testCases := []struct {
		name               string
		path               string
		method             string
		authHeader         string
		expectCheck        bool
		mockIsLogged       bool
		mockIsLoggedErr    error
		expectedStatusCode int
		expectedToken      string
	}{
		{
			name:               "LoginWithoutToken",
			path:               "/api/login",
			method:             http.MethodPost,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Options",
			path:               "/api/workouts",
			method:             http.MethodOptions,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "MissingToken",
			path:               "/api/dashboard",
			method:             http.MethodGet,
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "NotBearer",
			path:               "/api/dashboard",
			method:             http.MethodGet,
			authHeader:         "Basic abc",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/api/dashboard",
			method:             http.MethodGet,
			authHeader:         "Bearer mock_token_u1_1700000000000",
			expectCheck:        true,
			mockIsLogged:       true,
			expectedStatusCode: http.StatusOK,
			expectedToken:      "mock_token_u1_1700000000000",
		},
		{
			name:               "ExpiredToken",
			path:               "/api/workouts",
			method:             http.MethodGet,
			authHeader:         "bearer old-token",
			expectCheck:        true,
			mockIsLogged:       false,
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "CheckerError",
			path:               "/api/workouts",
			method:             http.MethodGet,
			authHeader:         "Bearer some-token",
			expectCheck:        true,
			mockIsLoggedErr:    errors.New("redis down"),
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLoginChecker := NewMockloginChecker(ctrl)
			authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			if tc.expectCheck {
				mockLoginChecker.EXPECT().
					IsLogged(gomock.Any(), middleware.BearerToken(req)).
					Return(tc.mockIsLogged, tc.mockIsLoggedErr)
			}

			var forwardedToken string
			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				forwardedToken, _ = backend.TokenFromContext(r.Context())
			})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.Equal(t, tc.expectedToken, forwardedToken)
		})
	}
}
