package middlewares

import (
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authorize checks the session role against the RBAC policy. Policy paths
// are relative to the API prefix. Must run after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		session := SessionFromContext(r.Context())
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(errors.New("authorize without session")))
			return
		}

		path := m.relativePath(r.URL.Path)
		allowed, err := m.RoleUsecase.IsPermitted(session.User.Role, r.Method, path)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !allowed {
			m.Log.Warn("Role not permitted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRoleKey, session.User.Role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil, session.User.Role, r.Method, path))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) relativePath(path string) string {
	prefix := "/" + m.InternalConfig.App.EndpointPrefix + "/" + m.InternalConfig.App.Version
	relative := strings.TrimPrefix(path, prefix)
	if relative == "" {
		return "/"
	}
	return strings.TrimSuffix(relative, "/")
}
