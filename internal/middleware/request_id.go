package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// separate key type so it cannot collide with the auth ctx key
type reqIDKeyType struct{}

var requestIDKey reqIDKeyType

func newReqID() string {
	// dependency-free, good enough for correlation
	return strconv.FormatInt(time.Now().UnixNano(), 36)
}

func RequestIDFrom(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		if s, ok := v.(string); ok { return s }
	}
	return ""
}

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := newReqID()
		// header + context only, never the body
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
