package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"loandesk/pkg/requestcontext"
)

// SessionCookieName holds the opaque id toasts are keyed by.
const SessionCookieName = "loandesk_session"

// Session ensures every browser carries a session cookie and exposes its value
// through requestcontext.SessionID. The id only scopes flash messages; it
// carries no identity.
func Session(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil && parsed != uuid.Nil {
					sessionID = parsed.String()
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := requestcontext.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
