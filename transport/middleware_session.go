package transport

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/urbannest/furniture-store/cmd/config"
	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/utils/logger"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "un_session"
	sessionHeaderName = "X-Session-Token"
)

// SessionMiddleware attaches a guest session id to every request. An
// incoming signed token is honored; otherwise a fresh session is minted
// and handed back via cookie and response header. This identifies a
// browser session for cart and feed state, not a user.
func SessionMiddleware(cfg config.SessionConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r, cfg.Secret)

			if sessionID == "" {
				sessionID = uuid.NewString()
				token, err := mintSessionToken(sessionID, cfg)
				if err != nil {
					logger.Error("[SessionMiddleware] error minting session token", zap.String("error", err.Error()))
				} else {
					http.SetCookie(w, &http.Cookie{
						Name:     sessionCookieName,
						Value:    token,
						Path:     "/",
						MaxAge:   int(cfg.TTL.Seconds()),
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
					w.Header().Set(sessionHeaderName, token)
				}
			}

			ctx := context.WithValue(r.Context(), constant.SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromRequest(r *http.Request, secret string) string {
	token := ""
	if c, err := r.Cookie(sessionCookieName); err == nil {
		token = c.Value
	}
	if token == "" {
		token = strings.TrimSpace(r.Header.Get(sessionHeaderName))
	}
	if token == "" {
		return ""
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return ""
	}

	return claims.Subject
}

func mintSessionToken(sessionID string, cfg config.SessionConfig) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
