package httpapi

import (
	"log/slog"
	"net/http"
)

// NewRouter assembles the route table and the outer middleware chain. Order
// matters: tracing wraps logging so log lines carry trace IDs, and recovery
// sits innermost so panics still produce an enveloped 500.
func NewRouter(
	handler *Handler,
	verifier TokenVerifier,
	logger *slog.Logger,
	corsAllowedOrigins []string,
	internalJobToken string,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicDomainRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, verifier)
	registerInternalJobRoutes(mux, handler, internalJobToken)

	var chain http.Handler = recoverPanic(logger, mux)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)
	chain = RequestTracing(chain)

	return chain
}

func recoverPanic(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
