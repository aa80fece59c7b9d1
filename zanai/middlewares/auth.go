// zanai/middlewares/auth.go
package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"zanai/zanai/config"
	"zanai/zanai/types"
)

// The web client sends its token in x-auth-token, so the middleware reads
// that header rather than an Authorization: Bearer pair.
const AuthHeader = "x-auth-token"

func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(AuthHeader)
			if tokenStr == "" {
				WriteError(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, "Token is not valid")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WriteError answers with the {msg} body the client expects on every non-2xx.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(types.ErrorResponse{Msg: msg})
}
