package middlewares

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// Authenticate resolves the session token into the stored session and
// rejects the request when either is missing or invalid.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionOptional attaches the session when one resolves and otherwise lets
// the request through anonymously.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, session, err := m.resolveSession(r)
		if err != nil {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Debug("Anonymous request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (string, *models.Session, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", nil, exceptions.ErrTokenMissing(nil)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return "", nil, err
	}

	session, err := m.SessionReader.Read(r.Context(), sessionID)
	if err != nil {
		return "", nil, err
	}
	if session == nil {
		return "", nil, exceptions.ErrSessionNotFound(errors.New("session expired or cleared"))
	}
	return sessionID, session, nil
}

// SessionFromContext returns the session attached by Authenticate, if any.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}

func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
