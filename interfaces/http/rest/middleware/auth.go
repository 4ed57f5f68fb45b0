package middleware

import (
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"ziwei-backend/pkg/auth"
	"ziwei-backend/pkg/common"
)

// AuthMiddleware validates bearer tokens and applies per-IP and per-user
// rate limits. Inside Lambda the API Gateway authorizer has already
// validated the token, so validation is skipped and claims are read from
// the forwarded headers.
type AuthMiddleware struct {
	validator   *auth.JWTValidator
	ipLimiter   *auth.RateLimiter
	userLimiter *auth.RateLimiter
	isLambda    bool
	logger      *zap.Logger
}

// NewAuthMiddleware creates the auth middleware
func NewAuthMiddleware(validator *auth.JWTValidator, isLambda bool, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator:   validator,
		ipLimiter:   auth.NewRateLimiter(120),
		userLimiter: auth.NewRateLimiter(60),
		isLambda:    isLambda,
		logger:      logger,
	}
}

// Authenticate is the middleware handler
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if allowed, _ := m.ipLimiter.Allow(r.Context(), ip); !allowed {
			common.RespondError(w, http.StatusTooManyRequests,
				common.StandardErrorCodes.TooManyRequests, "too many requests")
			return
		}

		if m.isLambda {
			m.authenticateFromHeaders(w, r, next)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			common.RespondError(w, http.StatusUnauthorized,
				common.StandardErrorCodes.Unauthorized, "missing authorization token")
			return
		}

		claims, err := m.validator.ValidateToken(token)
		if err != nil {
			m.logger.Debug("Token validation failed", zap.Error(err))
			common.RespondError(w, http.StatusUnauthorized,
				common.StandardErrorCodes.Unauthorized, "invalid or expired token")
			return
		}

		if allowed, _ := m.userLimiter.Allow(r.Context(), claims.UserID); !allowed {
			common.RespondError(w, http.StatusTooManyRequests,
				common.StandardErrorCodes.TooManyRequests, "too many requests")
			return
		}

		ctx := auth.WithUser(r.Context(), &auth.UserContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Roles:  claims.Roles,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticateFromHeaders trusts the identity the API Gateway authorizer
// forwarded on the request.
func (m *AuthMiddleware) authenticateFromHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		common.RespondError(w, http.StatusUnauthorized,
			common.StandardErrorCodes.Unauthorized, "missing authorizer context")
		return
	}

	if allowed, _ := m.userLimiter.Allow(r.Context(), userID); !allowed {
		common.RespondError(w, http.StatusTooManyRequests,
			common.StandardErrorCodes.TooManyRequests, "too many requests")
		return
	}

	ctx := auth.WithUser(r.Context(), &auth.UserContext{
		UserID: userID,
		Email:  r.Header.Get("X-User-Email"),
	})
	next.ServeHTTP(w, r.WithContext(ctx))
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx > 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
