package auth

import (
	"net"
	"net/http"

	"go.uber.org/zap"
)

// Middleware resolves the booking session for every request. A request
// without a valid cookie gets a new session id, subject to the per-IP
// limiter. Cookies past half their lifetime are reissued.
func (h *SessionHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(CookieName); err == nil {
			sid, exp, err := h.ParseToken(cookie.Value)
			if err == nil {
				// Sliding session: refresh token if it's more than halfway through its duration
				if exp.Sub(h.now()) < TokenDuration/2 {
					if err := h.setCookie(w, sid); err != nil {
						h.logger.Warn("Failed to renew session cookie", zap.Error(err))
					}
				}
				next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sid)))
				return
			}
			h.logger.Debug("Ignoring invalid session cookie", zap.Error(err))
		}

		ip := clientIP(r)
		if h.limiter != nil && !h.limiter.Allow(ip) {
			h.logger.Warn("Session creation rate limit exceeded", zap.String("ip", ip))
			http.Error(w, "Too many new sessions. Try again later.", http.StatusTooManyRequests)
			return
		}

		sid := NewSessionID()
		if err := h.setCookie(w, sid); err != nil {
			h.logger.Error("Failed to issue session cookie", zap.Error(err))
			http.Error(w, "Failed to start session", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sid)))
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
