package middlewares

import (
	"context"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"net/http"
)

// RequireAccess runs the access gate and only lets active clinics through.
// Denials answer 403 with the redirect in the Location header.
func (m *Middlewares) RequireAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := m.AccessUsecase.Evaluate(r.Context(), SessionFromContext(r.Context()))
		if decision.State != constvars.AccessStateActive {
			if decision.Redirect != "" {
				w.Header().Set(constvars.HeaderLocation, decision.Redirect)
			}
			err := exceptions.ErrAccessNotGranted(errors.New("access gate denied"), decision.State)
			if decision.State == constvars.AccessStateUnauthenticated {
				err = exceptions.ErrSessionNotFound(errors.New("access gate found no usable session"))
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACCESS_DECISION_KEY, decision)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
