package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/mansoorhotak/repairo-user-management-api/account"
)

type ctxKey int

const (
	ctxKeyAccountID ctxKey = iota
	ctxKeyKind
)

// requireAuth rejects requests without a valid bearer token and stashes the
// verified account id and kind in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			respondError(w, http.StatusUnauthorized, "Missing or malformed bearer token")
			return
		}

		claims, err := s.tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyAccountID, claims.AccountID)
		ctx = context.WithValue(ctx, ctxKeyKind, claims.Kind)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireKind gates a route group to one account kind. Authenticated
// accounts of the other kind get a 403.
func (s *Server) requireKind(kind account.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if kindFrom(r.Context()) != kind {
				respondError(w, http.StatusForbidden, "Access denied for this account kind")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func accountIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyAccountID).(string)
	return id
}

func kindFrom(ctx context.Context) account.Kind {
	kind, _ := ctx.Value(ctxKeyKind).(account.Kind)
	return kind
}
