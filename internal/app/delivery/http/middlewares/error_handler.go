package middlewares

import (
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a handler panic into the standard 500 envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := panicError(rec)
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Error("middlewares.ErrorHandler panic recovered",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Any(constvars.LoggingPanicKey, rec),
				zap.Stack("stack"),
			)

			if requestID != "" {
				w.Header().Set(constvars.HeaderXRequestID, requestID)
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err, r.Method, r.URL.Path))
		}()
		next.ServeHTTP(w, r)
	})
}

func panicError(rec interface{}) error {
	switch x := rec.(type) {
	case error:
		return x
	case string:
		return errors.New(x)
	default:
		return fmt.Errorf("%v", x)
	}
}
