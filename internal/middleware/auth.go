package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/model"
	"app/internal/service"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const userContextKey = contextKey("user")

// CredentialVerifier resolves Basic-Auth credentials to a user.
type CredentialVerifier interface {
	Authenticate(ctx context.Context, emailAddress, password string) (*model.User, error)
}

// BasicAuth authenticates requests with the HTTP Basic scheme and binds the
// resolved user into the request context. Every authentication failure
// produces the same response so the client cannot tell a missing user from a
// wrong password; logs carry the specific reason. Verifier errors outside the
// authentication contract surface as 500, not as denial.
func BasicAuth(verifier CredentialVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			emailAddress, password, ok := r.BasicAuth()
			if !ok {
				logger.Warn().Msg("auth header not found")
				denyAccess(w)
				return
			}

			user, err := verifier.Authenticate(r.Context(), emailAddress, password)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrUserNotFound):
					logger.Warn().Str("email", emailAddress).Msg("user not found")
				case errors.Is(err, service.ErrPasswordMismatch):
					logger.Warn().Str("email", emailAddress).Msg("authentication failure")
				default:
					// Anything outside the verifier's contract outcomes is an
					// infrastructure failure, not a bad credential.
					logger.Error().Err(err).Msg("credential verification failed")
					writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
					return
				}
				denyAccess(w)
				return
			}

			logger.Info().Str("email", user.EmailAddress).Msg("authentication successful")
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user bound by BasicAuth.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok && user != nil
}

// WithUser binds a user into ctx. BasicAuth does this automatically; this
// function is provided as a convenience for testing.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func denyAccess(w http.ResponseWriter) {
	writeMessage(w, http.StatusUnauthorized, "Access Denied")
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
