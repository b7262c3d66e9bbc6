package auth

import "github.com/golang-jwt/jwt/v5"

// AdminTokenPayload is the identity minted into an admin access token.
type AdminTokenPayload struct {
	Email string
	JTI   string
}

// AdminTokenClaims are the JWT claims carried by an admin access token.
type AdminTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
