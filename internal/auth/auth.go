package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CookieName    = "booking_session"
	TokenDuration = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

type contextKey string

const SessionIDKey contextKey = "session_id"

// WithSessionID attaches a booking session id to ctx.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

// SessionID returns the booking session id set by the middleware.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok && id != ""
}

// SessionHandler issues and verifies the signed cookie that ties a browser
// to its booking session.
type SessionHandler struct {
	secret  []byte
	secure  bool
	limiter *IPLimiter
	logger  *zap.Logger
	now     func() time.Time
}

func NewSessionHandler(secret string, secure bool, limiter *IPLimiter, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		secret:  []byte(secret),
		secure:  secure,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// NewSessionID returns a random session id.
func NewSessionID() string {
	return uuid.NewString()
}

func (h *SessionHandler) GenerateToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": h.now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// ParseToken verifies a token and returns its session id and expiry.
func (h *SessionHandler) ParseToken(tokenString string) (string, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.secret, nil
	}, jwt.WithTimeFunc(h.now))
	if err != nil || !token.Valid {
		return "", time.Time{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", time.Time{}, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, ErrInvalidToken
	}
	return sid, exp.Time, nil
}

func (h *SessionHandler) setCookie(w http.ResponseWriter, sessionID string) error {
	token, err := h.GenerateToken(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  h.now().Add(TokenDuration),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}
