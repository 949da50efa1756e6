package token

import "github.com/golang-jwt/jwt/v5"

// Claims carries the storefront user identity inside the signed JWT.
// Field names match what the web client already decodes.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
