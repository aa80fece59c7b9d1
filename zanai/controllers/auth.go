// zanai/controllers/auth.go
package controllers

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"zanai/zanai/config"
	"zanai/zanai/sources/memory"
	"zanai/zanai/types"
)

var ErrInvalidPin = errors.New("invalid PIN")

var pinPattern = regexp.MustCompile(`^\d{6}$`)

type AuthController struct {
	history *memory.HistoryStore
	cfg     config.Config
}

func NewAuthController(history *memory.HistoryStore, cfg config.Config) *AuthController {
	return &AuthController{
		history: history,
		cfg:     cfg,
	}
}

// Login checks the PIN and issues a signed token plus the stored history.
func (c *AuthController) Login(ctx context.Context, pin string) (string, []types.HistoryRecord, error) {
	if !pinPattern.MatchString(pin) || pin != c.cfg.Pin {
		return "", nil, ErrInvalidPin
	}
	claims := jwt.MapClaims{
		"sub": "zanai",
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, c.history.Records(), nil
}
