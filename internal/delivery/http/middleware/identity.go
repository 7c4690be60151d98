package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	companyIDKey contextKey = "companyID"
)

// Identity reads the caller identity resolved by the upstream gateway.
// Authentication itself happens before traffic reaches this service.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if userID := r.Header.Get("X-User-ID"); userID != "" {
			ctx = context.WithValue(ctx, userIDKey, userID)
		}
		if companyID := r.Header.Get("X-Company-ID"); companyID != "" {
			ctx = context.WithValue(ctx, companyIDKey, companyID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

func CompanyID(ctx context.Context) string {
	companyID, _ := ctx.Value(companyIDKey).(string)
	return companyID
}
