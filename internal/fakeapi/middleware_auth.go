package fakeapi

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/utils"
)

type ctxKey struct{}

// emailCtxKey carries the authenticated account email.
var emailCtxKey = ctxKey{}

// auth enforces JWT bearer authentication. The token subject, the account
// email, is stored in the request context for the handlers.
//
// Requests are rejected with 401 Unauthorized when the header is missing,
// malformed, or the token is expired, forged or issued for an account that
// no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		email, err := utils.ValidateAndParseJWTToken(tokenString, h.signKey, h.issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		if !h.store.hasUser(email) {
			log.Warn().Str("email", email).Msg("token issued for unknown account")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), emailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func emailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailCtxKey).(string)
	return email
}
