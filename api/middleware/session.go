package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

// cookie lifetime for minted cart sessions; the snapshot itself may have
// its own TTL in Redis.
const cartSessionCookieMaxAge = 180 * 24 * time.Hour

// CartSession resolves the shopper's cart session from a cookie or the
// X-Cart-Session header, minting a fresh id when neither is present. The
// id is echoed back on both channels so browser and non-browser clients
// can hold on to it.
func CartSession(cfg config.CartConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r, cfg.SessionCookie)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.SessionCookie,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cartSessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(cartSessionHeader, sessionID)

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}
	if header := r.Header.Get(cartSessionHeader); header != "" {
		if _, err := uuid.Parse(header); err == nil {
			return header
		}
	}
	return ""
}
