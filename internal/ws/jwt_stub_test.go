package ws

import (
	"roadtrip-career/internal/pkg/jwt"

	"github.com/google/uuid"
)

type stubJWT struct{}

func (stubJWT) IssuePair(uuid.UUID, string) (jwt.TokenPair, error) { return jwt.TokenPair{}, nil }
func (stubJWT) ValidateAccessToken(string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}
func (stubJWT) ValidateRefreshToken(string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}
