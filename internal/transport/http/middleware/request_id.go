package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	reqctx "github.com/baechuer/grandveggie/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID propagates or assigns X-Request-Id and records the caller
// address for logs and audit entries.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := strings.TrimSpace(r.Header.Get(HeaderXRequestID))
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderXRequestID, reqID)

		ctx := reqctx.WithRequestID(r.Context(), reqID)
		ctx = reqctx.WithClientIP(ctx, clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP reads RemoteAddr. Put chi's RealIP in front when running behind
// a trusted proxy.
func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	return addr
}
