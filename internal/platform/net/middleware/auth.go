package middleware

import (
	stdhttp "net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	perr "foodreview/internal/platform/errors"
	pnet "foodreview/internal/platform/net"
)

// Verifier validates a bearer token and returns the caller's opaque user id.
// The identity provider is external; this service trusts the id verbatim
type Verifier interface {
	Verify(token string) (userID string, err error)
}

// HS256Verifier validates HS256-signed tokens (Supabase-style) and returns
// the sub claim as the user id
type HS256Verifier struct {
	Secret []byte
}

// Verify implements Verifier
func (v HS256Verifier) Verify(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, perr.Unauthorizedf("unexpected signing method %q", t.Method.Alg())
		}
		return v.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid or expired token")
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", perr.Unauthorizedf("token missing subject")
	}
	return sub, nil
}

// bearerToken extracts the raw bearer token from the Authorization header
func bearerToken(r *stdhttp.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || !strings.EqualFold(authz[:len(prefix)], prefix) {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's user id on the request context
// write is the JSON writer seam so this package stays transport-plumbing free
func RequireAuth(v Verifier, write func(w stdhttp.ResponseWriter, status int, body any)) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			raw, err := bearerToken(r)
			if err == nil {
				var uid string
				uid, err = v.Verify(raw)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), uid)))
					return
				}
			}
			status, wire := perr.HTTP(err)
			write(w, status, wire)
		})
	}
}
