package service

import (
	"usersvc/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
type TokenService interface {
	// Issue signs a token embedding the given identity.
	Issue(identity entity.Identity) (string, error)

	// Verify checks signature and expiry and returns the embedded identity.
	// Every failure yields the same invalid-token error.
	Verify(token string) (*entity.Identity, error)
}
