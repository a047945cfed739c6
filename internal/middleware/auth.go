package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/ctxdata"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/errdefs"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware validates HS256 bearer tokens and stores the caller in the
// request context. An empty secret disables authentication.
func NewAuthMiddleware(secret, issuer string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		key := []byte(secret)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get("Authorization")
			if header == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			principal, err := parseBearer(header, key, issuer)
			if err != nil {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				}
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxdata.WithPrincipal(ctx, principal)))
		})
	}
}

// RequireRole lets the request through only when the caller has one of roles.
// Without a principal in the context (auth disabled) every request passes.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctxdata.GetPrincipal(ctx); !ok {
				next.ServeHTTP(w, r)
				return
			}

			role, _ := ctxdata.GetUserRole(ctx)
			if !slices.Contains(roles, role) {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "permission denied", zap.String("path", r.URL.Path), zap.String("role", role))
				}
				writeError(w, http.StatusForbidden, errdefs.ErrPermissionDenied.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseBearer(header string, key []byte, issuer string) (ctxdata.Principal, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return ctxdata.Principal{}, fmt.Errorf("%w: expected bearer token", errdefs.ErrAuthentication)
	}

	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ctxdata.Principal{}, fmt.Errorf("%w: token expired", errdefs.ErrAuthentication)
		}
		return ctxdata.Principal{}, fmt.Errorf("%w: %w", errdefs.ErrAuthentication, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return ctxdata.Principal{}, fmt.Errorf("%w: invalid claims", errdefs.ErrAuthentication)
	}
	if issuer != "" && claims.Issuer != issuer {
		return ctxdata.Principal{}, fmt.Errorf("%w: unexpected issuer %q", errdefs.ErrAuthentication, claims.Issuer)
	}
	if claims.Subject == "" {
		return ctxdata.Principal{}, fmt.Errorf("%w: missing subject", errdefs.ErrAuthentication)
	}

	return ctxdata.Principal{UserID: claims.Subject, Role: claims.Role}, nil
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}
