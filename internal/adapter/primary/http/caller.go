package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
)

// Headers set by the upstream authentication gateway.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

type callerKey struct{}

// WithCaller returns a context carrying the authenticated user.
func WithCaller(ctx context.Context, user entity.User) context.Context {
	return context.WithValue(ctx, callerKey{}, user)
}

// CallerFromContext returns the authenticated user, if any.
func CallerFromContext(ctx context.Context) (entity.User, bool) {
	user, ok := ctx.Value(callerKey{}).(entity.User)
	return user, ok
}

// RequireCaller rejects requests without a valid caller identity and
// stores the caller in the request context.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
		id, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil || id <= 0 {
			respondError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid caller identity")
			return
		}

		user := entity.User{
			ID:       id,
			Username: strings.TrimSpace(r.Header.Get(HeaderUserName)),
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), user)))
	})
}
